package nav

import (
	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/input"
)

// Mode controls where the viewport places the cursor row. Auto centers
// like Center; the z commands pick an explicit anchor that stays in
// effect until the next z command.
type Mode int

const (
	ModeAuto Mode = iota
	ModeTop
	ModeCenter
	ModeBottom
)

func (m Mode) String() string {
	switch m {
	case ModeTop:
		return "top"
	case ModeCenter:
		return "center"
	case ModeBottom:
		return "bottom"
	default:
		return "auto"
	}
}

func modeFor(a input.Anchor) Mode {
	switch a {
	case input.AnchorTop:
		return ModeTop
	case input.AnchorBottom:
		return ModeBottom
	default:
		return ModeCenter
	}
}

// Viewport is the cursor plus the scroll state of the grid window. The
// zero value points at the top-left cell in auto mode.
type Viewport struct {
	Cursor    grid.Position
	ColOffset grid.ColIndex
	Mode      Mode
}

// RowOffset returns the first visible row for a window of height rows
// over total rows. The vertical offset is derived on demand so the
// anchor keeps applying as the cursor moves.
func (v Viewport) RowOffset(height, total int) int {
	if height <= 0 || total <= 0 {
		return 0
	}
	sel := int(v.Cursor.Row)
	maxOffset := max(0, total-height)

	switch v.Mode {
	case ModeTop:
		return min(sel, maxOffset)
	case ModeBottom:
		return max(0, sel-(height-1))
	default:
		if sel < height/2 {
			return 0
		}
		return min(sel-height/2, maxOffset)
	}
}
