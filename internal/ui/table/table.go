// Package table renders the spreadsheet-style grid pane.
//
// The pane shows a column letter row (A, B, C...), the header row, and
// a window of data rows with 1-based line numbers in a gutter. The
// cursor column is marked in the letter row and the cursor row carries
// a marker in the gutter, so the selected cell can be found even on
// terminals without color.
package table

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/nav"
	"github.com/funkybooboo/lazycsv/internal/ui/panes"
	"github.com/funkybooboo/lazycsv/internal/ui/styles"
)

// headerLines is the frame plus the letter and header rows.
const headerLines = 4

const (
	rowMarker = "► "
	markerPad = "  "
)

// Renderer draws the grid pane. Construct with New so the column window
// and cell clamp match the configuration.
type Renderer struct {
	visibleCols int
	cellWidth   int
}

// New returns a Renderer showing at most visibleCols columns at a time,
// each clamped to cellWidth display columns.
func New(visibleCols, cellWidth int) Renderer {
	return Renderer{
		visibleCols: max(visibleCols, 1),
		cellWidth:   max(cellWidth, 1),
	}
}

// DataHeight returns how many data rows fit in a pane of the given
// total height.
func DataHeight(paneHeight int) int {
	return max(paneHeight-headerLines, 1)
}

// Render draws doc inside a titled frame. width and height are the full
// pane size including the frame.
func (r Renderer) Render(doc *document.Document, view nav.Viewport, width, height int) string {
	frame := panes.Config{
		Width:  width,
		Height: height,
		Title:  "lazycsv: " + doc.Filename(),
	}

	if doc.ColumnCount() == 0 {
		frame.Content = styles.MutedTextStyle.Render(" (empty file)")
		return panes.Render(frame)
	}

	start := min(int(view.ColOffset), doc.ColumnCount()-1)
	start = max(start, 0)
	end := min(start+r.visibleCols, doc.ColumnCount())

	dataHeight := DataHeight(height)
	offset := view.RowOffset(dataHeight, doc.RowCount())
	lastRow := min(offset+dataHeight, doc.RowCount())

	gutter := gutterWidth(doc.RowCount())
	widths := r.columnWidths(doc, start, end, offset, lastRow)

	lines := make([]string, 0, 2+lastRow-offset)
	lines = append(lines, r.letterLine(view, start, end, gutter, widths))
	lines = append(lines, r.headerLine(doc, start, end, gutter, widths))
	for row := offset; row < lastRow; row++ {
		lines = append(lines, r.dataLine(doc, view, grid.RowIndex(row), start, end, gutter, widths))
	}

	frame.Content = strings.Join(lines, "\n")
	return panes.Render(frame)
}

// columnWidths sizes each visible column to its widest visible value.
// Cells are already clamped to the configured cell width before they
// are measured; the letter cell sets the floor so the marker row always
// lines up.
func (r Renderer) columnWidths(doc *document.Document, start, end, firstRow, lastRow int) []int {
	widths := make([]int, end-start)
	for i := range widths {
		col := grid.ColIndex(start + i)
		w := runewidth.StringWidth(grid.ColumnLetter(col)) + 1
		if hw := runewidth.StringWidth(r.displayCell(doc.Header(col))); hw > w {
			w = hw
		}
		for row := firstRow; row < lastRow; row++ {
			if cw := runewidth.StringWidth(r.displayCell(doc.CellText(grid.RowIndex(row), col))); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}
	return widths
}

// displayCell flattens and clamps a raw cell value for the grid.
func (r Renderer) displayCell(s string) string {
	return styles.TruncateString(styles.Sanitize(s), r.cellWidth)
}

// letterLine is the spreadsheet letter row. The cursor column carries a
// marker in place of the alignment space.
func (r Renderer) letterLine(view nav.Viewport, start, end, gutter int, widths []int) string {
	cells := make([]string, 0, 1+end-start)
	cells = append(cells, markerPad+strings.Repeat(" ", gutter))
	for i := start; i < end; i++ {
		letter := grid.ColumnLetter(grid.ColIndex(i))
		if grid.ColIndex(i) == view.Cursor.Col {
			cells = append(cells, styles.CursorMarkerStyle.Render(styles.PadRight("►"+letter, widths[i-start])))
		} else {
			cells = append(cells, styles.LetterRowStyle.Render(styles.PadRight(" "+letter, widths[i-start])))
		}
	}
	return strings.Join(cells, " ")
}

func (r Renderer) headerLine(doc *document.Document, start, end, gutter int, widths []int) string {
	cells := make([]string, 0, 1+end-start)
	cells = append(cells, markerPad+styles.PadLeft("#", gutter))
	for i := start; i < end; i++ {
		name := r.displayCell(doc.Header(grid.ColIndex(i)))
		cells = append(cells, styles.HeaderStyle.Render(styles.PadRight(name, widths[i-start])))
	}
	return strings.Join(cells, " ")
}

func (r Renderer) dataLine(doc *document.Document, view nav.Viewport, row grid.RowIndex, start, end, gutter int, widths []int) string {
	onCursorRow := row == view.Cursor.Row

	number := styles.PadLeft(strconv.Itoa(row.LineNumber()), gutter)
	cells := make([]string, 0, 1+end-start)
	if onCursorRow {
		cells = append(cells, styles.CursorMarkerStyle.Render(rowMarker+number))
	} else {
		cells = append(cells, markerPad+styles.RowNumberStyle.Render(number))
	}

	for i := start; i < end; i++ {
		col := grid.ColIndex(i)
		text := styles.PadRight(r.displayCell(doc.CellText(row, col)), widths[i-start])
		if onCursorRow && col == view.Cursor.Col {
			cells = append(cells, styles.SelectedCell.Render(text))
		} else {
			cells = append(cells, styles.CellStyle.Render(text))
		}
	}
	return strings.Join(cells, " ")
}

// gutterWidth sizes the row number column. Three columns minimum keeps
// short files from shifting when they grow past two digits.
func gutterWidth(rows int) int {
	return max(len(strconv.Itoa(max(rows, 1))), 3)
}
