// Package statusbar renders the bottom status line and the file strip.
//
// The status line mirrors vim: position segments behind a mode
// indicator in normal mode, the live prompt in command mode, and
// transient messages in place of the segments until the next
// keystroke.
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/nav"
	"github.com/funkybooboo/lazycsv/internal/ui/panes"
	"github.com/funkybooboo/lazycsv/internal/ui/styles"
)

// maxCellPreview caps the quoted cell value in the status line.
const maxCellPreview = 30

// StripHeight is the height of the file strip pane, frame included.
const StripHeight = 3

// Context is everything the status line needs for one frame. The app
// fills it from the live model so rendering stays a pure function.
type Context struct {
	Doc  *document.Document
	View nav.Viewport

	// Message is a transient status shown in place of the position
	// segments until the next keystroke.
	Message string

	// CommandLine is the rendered command prompt. When non-empty the
	// status line shows only the prompt.
	CommandLine string

	Width int
}

// Render draws the one-line status bar.
func Render(ctx Context) string {
	var line string
	switch {
	case ctx.CommandLine != "":
		line = " " + ctx.CommandLine
	case ctx.Message != "":
		line = styles.StatusBarStyle.Render(styles.StatusMessageStyle.Render(ctx.Message))
	default:
		line = styles.StatusBarStyle.Render(positionLine(ctx))
	}
	if ctx.Width > 0 && lipgloss.Width(line) > ctx.Width {
		line = truncate.StringWithTail(line, uint(ctx.Width), "…")
	}
	return line
}

func positionLine(ctx Context) string {
	doc := ctx.Doc
	line := 0
	if doc.RowCount() > 0 {
		line = ctx.View.Cursor.Row.LineNumber()
	}
	col := ctx.View.Cursor.Col

	segments := []string{
		styles.ModeIndicatorStyle.Render("-- NORMAL --"),
		fmt.Sprintf("Row %d/%d", line, doc.RowCount()),
		fmt.Sprintf("Col %s: %s (%d/%d)", grid.ColumnLetter(col), doc.Header(col), col.ColumnNumber(), doc.ColumnCount()),
		"Cell: " + cellPreview(doc, ctx.View),
		styles.MutedTextStyle.Render("[?] help"),
	}
	return strings.Join(segments, " │ ")
}

// cellPreview formats the cursor cell for the status line. Empty cells
// and empty files read as tags rather than bare quotes.
func cellPreview(doc *document.Document, view nav.Viewport) string {
	if doc.RowCount() == 0 {
		return "<no data>"
	}
	value := doc.CellText(view.Cursor.Row, view.Cursor.Col)
	if value == "" {
		return "<empty>"
	}
	return `"` + styles.TruncateString(styles.Sanitize(value), maxCellPreview) + `"`
}

// FileStrip renders the bordered file list pane. The active file
// carries a marker; long lists are windowed from the active file so
// the marker always stays on screen.
func FileStrip(files []string, active, width int) string {
	return panes.Render(panes.Config{
		Content: stripContent(files, active, max(width-2, 1)),
		Width:   width,
		Height:  StripHeight,
		Title:   "Files",
	})
}

func stripContent(files []string, active, innerWidth int) string {
	if len(files) == 0 {
		return ""
	}
	if active < 0 || active >= len(files) {
		active = 0
	}

	label := fmt.Sprintf("Files (%d/%d): ", active+1, len(files))
	if len(files) == 1 {
		label = "File: "
	}

	for first := 0; ; first++ {
		var b strings.Builder
		b.WriteString(" ")
		b.WriteString(label)
		if first > 0 {
			b.WriteString("… | ")
		}

		markerEnd := 0
		for i := first; i < len(files); i++ {
			if i > first {
				b.WriteString(" | ")
			}
			name := filepath.Base(files[i])
			if i == active {
				b.WriteString(styles.FileActiveStyle.Render("► " + name))
				markerEnd = lipgloss.Width(b.String())
			} else {
				b.WriteString(styles.FileInactiveStyle.Render(name))
			}
		}

		if markerEnd <= innerWidth || first >= active {
			return b.String()
		}
	}
}
