package grid

// Grid is the read-only cell accessor navigation operates on. Implementations
// must not change for the duration of a single navigation operation.
type Grid interface {
	// RowCount returns the number of data rows, excluding any header row.
	RowCount() int

	// ColumnCount returns the number of columns.
	ColumnCount() int

	// CellText returns the text of a cell, or the empty string when the cell
	// is blank or out of bounds.
	CellText(row RowIndex, col ColIndex) string
}

// IsEmpty reports whether g has no addressable cells.
func IsEmpty(g Grid) bool {
	return g.RowCount() == 0 || g.ColumnCount() == 0
}
