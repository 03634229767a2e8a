package input

// Direction is a single-cell motion axis.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Seek selects which non-empty cell a word motion targets within the
// current row.
type Seek int

const (
	SeekNext Seek = iota // w: next non-empty cell to the right
	SeekPrev             // b: previous non-empty cell to the left
	SeekLast             // e: last non-empty cell in the row
)

func (s Seek) String() string {
	switch s {
	case SeekNext:
		return "next"
	case SeekPrev:
		return "prev"
	default:
		return "last"
	}
}

// Anchor is the viewport row the cursor is pinned to after a z command.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorCenter
	AnchorBottom
)

func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorCenter:
		return "center"
	default:
		return "bottom"
	}
}

// FileDirection selects a neighbor in the session file list.
type FileDirection int

const (
	NextFile FileDirection = iota
	PreviousFile
)

func (d FileDirection) String() string {
	if d == NextFile {
		return "next"
	}
	return "previous"
}

// Action is a resolved command. Motions carry the count they were
// prefixed with; callers apply them against the grid.
type Action interface {
	isAction()
}

// MoveBy steps the cursor Count cells in Dir, clamping at the edge.
type MoveBy struct {
	Dir   Direction
	Count int
}

// JumpToRow moves to the 1-based Line, erroring when out of range.
type JumpToRow struct {
	Line int
}

// JumpToColumn moves to the 1-based column Number, erroring when out
// of range.
type JumpToColumn struct {
	Number int
}

// JumpToFirstRow moves to row 1, keeping the column.
type JumpToFirstRow struct{}

// JumpToLastRow moves to the last row, keeping the column.
type JumpToLastRow struct{}

// JumpToFirstColumn moves to the first column, keeping the row.
type JumpToFirstColumn struct{}

// JumpToLastColumn moves to the last column, keeping the row.
type JumpToLastColumn struct{}

// SeekNonEmpty repeats a word motion Count times within the row.
type SeekNonEmpty struct {
	Seek  Seek
	Count int
}

// PageBy moves the cursor Delta rows, clamping at the edges.
type PageBy struct {
	Delta int
}

// SetViewportMode pins the cursor to a viewport anchor without moving
// it.
type SetViewportMode struct {
	Anchor Anchor
}

// SwitchFile activates a neighboring file in the session.
type SwitchFile struct {
	Dir FileDirection
}

// YankRow copies the current row.
type YankRow struct{}

// DeleteRow requests deletion of the current row.
type DeleteRow struct{}

// CancelPending reports that Esc discarded a pending sequence or
// count.
type CancelPending struct{}

func (MoveBy) isAction()            {}
func (JumpToRow) isAction()         {}
func (JumpToColumn) isAction()      {}
func (JumpToFirstRow) isAction()    {}
func (JumpToLastRow) isAction()     {}
func (JumpToFirstColumn) isAction() {}
func (JumpToLastColumn) isAction()  {}
func (SeekNonEmpty) isAction()      {}
func (PageBy) isAction()            {}
func (SetViewportMode) isAction()   {}
func (SwitchFile) isAction()        {}
func (YankRow) isAction()           {}
func (DeleteRow) isAction()         {}
func (CancelPending) isAction()     {}
