package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funkybooboo/lazycsv/internal/grid"
)

func TestRowOffset_AnchorMath(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		row    int
		height int
		total  int
		want   int
	}{
		{"auto near top", ModeAuto, 5, 20, 100, 0},
		{"auto centered", ModeAuto, 50, 20, 100, 40},
		{"auto near bottom", ModeAuto, 95, 20, 100, 80},
		{"top", ModeTop, 50, 20, 100, 50},
		{"top at end", ModeTop, 95, 20, 100, 80},
		{"center", ModeCenter, 50, 20, 100, 40},
		{"center near start", ModeCenter, 5, 20, 100, 0},
		{"bottom", ModeBottom, 50, 20, 100, 31},
		{"bottom near start", ModeBottom, 5, 20, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{
				Cursor: grid.Position{Row: grid.RowIndex(tt.row)},
				Mode:   tt.mode,
			}
			assert.Equal(t, tt.want, v.RowOffset(tt.height, tt.total))
		})
	}
}

func TestRowOffset_TableSmallerThanWindow(t *testing.T) {
	for _, mode := range []Mode{ModeAuto, ModeTop, ModeCenter, ModeBottom} {
		t.Run(mode.String(), func(t *testing.T) {
			v := Viewport{Cursor: grid.Position{Row: 2}, Mode: mode}
			assert.Equal(t, 0, v.RowOffset(10, 5))
		})
	}
}

func TestRowOffset_DegenerateWindow(t *testing.T) {
	v := Viewport{Cursor: grid.Position{Row: 7}}
	assert.Equal(t, 0, v.RowOffset(0, 100))
	assert.Equal(t, 0, v.RowOffset(10, 0))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "auto", ModeAuto.String())
	assert.Equal(t, "top", ModeTop.String())
	assert.Equal(t, "center", ModeCenter.String())
	assert.Equal(t, "bottom", ModeBottom.String())
}
