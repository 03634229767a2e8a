// Package grid defines the coordinate primitives and the read-only cell
// accessor shared by navigation and rendering.
package grid

import "fmt"

// RowIndex is a zero-based row coordinate. Rows and columns use distinct
// types so an index can never be applied to the wrong axis.
type RowIndex int

// ColIndex is a zero-based column coordinate.
type ColIndex int

// Add returns r shifted by delta, saturating at zero.
func (r RowIndex) Add(delta int) RowIndex {
	n := int(r) + delta
	if n < 0 {
		return 0
	}
	return RowIndex(n)
}

// Clamp bounds r to [0, rows-1]. Non-positive rows yields zero.
func (r RowIndex) Clamp(rows int) RowIndex {
	if rows <= 0 || r < 0 {
		return 0
	}
	if int(r) >= rows {
		return RowIndex(rows - 1)
	}
	return r
}

// LineNumber is the one-based number shown to the user.
func (r RowIndex) LineNumber() int {
	return int(r) + 1
}

// Add returns c shifted by delta, saturating at zero.
func (c ColIndex) Add(delta int) ColIndex {
	n := int(c) + delta
	if n < 0 {
		return 0
	}
	return ColIndex(n)
}

// Clamp bounds c to [0, cols-1]. Non-positive cols yields zero.
func (c ColIndex) Clamp(cols int) ColIndex {
	if cols <= 0 || c < 0 {
		return 0
	}
	if int(c) >= cols {
		return ColIndex(cols - 1)
	}
	return c
}

// ColumnNumber is the one-based number shown to the user.
func (c ColIndex) ColumnNumber() int {
	return int(c) + 1
}

// Position is the selected cell. The zero value selects the top-left cell.
type Position struct {
	Row RowIndex
	Col ColIndex
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
