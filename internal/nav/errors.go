package nav

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid is returned when a motion is applied to a grid with no
// rows or no columns.
var ErrEmptyGrid = errors.New("empty grid")

// Axis names which coordinate an absolute jump missed.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "column"
}

// OutOfBoundsError reports an absolute jump outside the grid. The
// cursor is left where it was.
type OutOfBoundsError struct {
	Axis      Axis
	Requested int // 1-based
	Max       int // highest valid 1-based value
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s %d out of range (max %d)", e.Axis, e.Requested, e.Max)
}
