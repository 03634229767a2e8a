// Package nav applies resolved commands to a viewport over a grid.
// Transitions are all or nothing: an action either succeeds completely
// or returns an error with the viewport exactly as it was.
package nav

import (
	"strings"

	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/input"
)

// DefaultVisibleColumns is how many columns the grid window shows when
// the configuration does not say otherwise.
const DefaultVisibleColumns = 10

// Engine applies actions to a viewport. The zero value uses
// DefaultVisibleColumns.
type Engine struct {
	VisibleCols int
}

func (e Engine) visibleCols() int {
	if e.VisibleCols > 0 {
		return e.VisibleCols
	}
	return DefaultVisibleColumns
}

// Apply runs one action against the grid. Relative motions clamp at
// the edges and never fail; absolute jumps outside the grid return
// *OutOfBoundsError. File, yank and delete actions are not viewport
// transitions and pass through unchanged.
func (e Engine) Apply(v Viewport, act input.Action, g grid.Grid) (Viewport, error) {
	if m, ok := act.(input.SetViewportMode); ok {
		v.Mode = modeFor(m.Anchor)
		return v, nil
	}
	if grid.IsEmpty(g) {
		return v, ErrEmptyGrid
	}

	rows, cols := g.RowCount(), g.ColumnCount()
	switch a := act.(type) {
	case input.MoveBy:
		count := max(a.Count, 1)
		switch a.Dir {
		case input.Up:
			v.Cursor.Row = v.Cursor.Row.Add(-count).Clamp(rows)
		case input.Down:
			v.Cursor.Row = v.Cursor.Row.Add(count).Clamp(rows)
		case input.Left:
			v.Cursor.Col = v.Cursor.Col.Add(-count).Clamp(cols)
		case input.Right:
			v.Cursor.Col = v.Cursor.Col.Add(count).Clamp(cols)
		}
		return e.scrollToCursor(v), nil

	case input.PageBy:
		v.Cursor.Row = v.Cursor.Row.Add(a.Delta).Clamp(rows)
		return v, nil

	case input.JumpToRow:
		if a.Line < 1 || a.Line > rows {
			return v, &OutOfBoundsError{Axis: AxisRow, Requested: a.Line, Max: rows}
		}
		v.Cursor.Row = grid.RowIndex(a.Line - 1)
		return v, nil

	case input.JumpToColumn:
		if a.Number < 1 || a.Number > cols {
			return v, &OutOfBoundsError{Axis: AxisColumn, Requested: a.Number, Max: cols}
		}
		v.Cursor.Col = grid.ColIndex(a.Number - 1)
		return e.scrollToCursor(v), nil

	case input.JumpToFirstRow:
		v.Cursor.Row = 0
		return v, nil

	case input.JumpToLastRow:
		v.Cursor.Row = grid.RowIndex(rows - 1)
		return v, nil

	case input.JumpToFirstColumn:
		v.Cursor.Col = 0
		v.ColOffset = 0
		return v, nil

	case input.JumpToLastColumn:
		v.Cursor.Col = grid.ColIndex(cols - 1)
		v.ColOffset = grid.ColIndex(max(0, cols-e.visibleCols()))
		return v, nil

	case input.SeekNonEmpty:
		for range max(a.Count, 1) {
			col, ok := seekColumn(g, v.Cursor, a.Seek)
			if !ok {
				break
			}
			v.Cursor.Col = col
		}
		return e.scrollToCursor(v), nil

	default:
		return v, nil
	}
}

// ClampTo refits the viewport after the grid changed shape, keeping
// the cursor on the nearest valid cell.
func (e Engine) ClampTo(v Viewport, g grid.Grid) Viewport {
	if grid.IsEmpty(g) {
		return Viewport{Mode: v.Mode}
	}
	v.Cursor.Row = v.Cursor.Row.Clamp(g.RowCount())
	v.Cursor.Col = v.Cursor.Col.Clamp(g.ColumnCount())

	maxOffset := grid.ColIndex(max(0, g.ColumnCount()-e.visibleCols()))
	v.ColOffset = min(max(v.ColOffset, 0), maxOffset)
	return e.scrollToCursor(v)
}

// scrollToCursor nudges the horizontal window just far enough to bring
// the cursor column into view.
func (e Engine) scrollToCursor(v Viewport) Viewport {
	vis := grid.ColIndex(e.visibleCols())
	if v.Cursor.Col < v.ColOffset {
		v.ColOffset = v.Cursor.Col
	} else if v.Cursor.Col >= v.ColOffset+vis {
		v.ColOffset = v.Cursor.Col - vis + 1
	}
	return v
}

// seekColumn finds the column a word motion lands on, or reports that
// there is nowhere to go. Cells containing only whitespace count as
// empty. The last-cell seek falls back to the final column when the
// whole row is empty.
func seekColumn(g grid.Grid, pos grid.Position, s input.Seek) (grid.ColIndex, bool) {
	last := grid.ColIndex(g.ColumnCount() - 1)
	switch s {
	case input.SeekNext:
		for c := pos.Col + 1; c <= last; c++ {
			if !cellBlank(g, pos.Row, c) {
				return c, true
			}
		}
		return 0, false
	case input.SeekPrev:
		for c := pos.Col - 1; c >= 0; c-- {
			if !cellBlank(g, pos.Row, c) {
				return c, true
			}
		}
		return 0, false
	default:
		for c := last; c >= 0; c-- {
			if !cellBlank(g, pos.Row, c) {
				return c, true
			}
		}
		return last, true
	}
}

func cellBlank(g grid.Grid, row grid.RowIndex, col grid.ColIndex) bool {
	return strings.TrimSpace(g.CellText(row, col)) == ""
}
