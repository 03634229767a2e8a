// Package overlay composites modal content on top of a background view
// without clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position selects where the foreground block lands.
type Position int

const (
	// Center places the block in the middle of the viewport.
	Center Position = iota
	// Top places the block at the top, horizontally centered.
	Top
	// Bottom places the block at the bottom, horizontally centered.
	Bottom
)

// Config describes the viewport the overlay is drawn into.
type Config struct {
	// Width and Height are the viewport dimensions.
	Width  int
	Height int
	// Position selects vertical placement.
	Position Position
	// PadY keeps this many background rows visible above (Top) or
	// below (Bottom) the block.
	PadY int
}

// Place draws fg over bg. Both strings may carry ANSI escapes; the
// background rows beside the block keep their styling.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	if missing := cfg.Height - len(bgLines); missing > 0 {
		blank := strings.Repeat(" ", cfg.Width)
		for range missing {
			bgLines = append(bgLines, blank)
		}
	}

	startX, startY := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		row := startY + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = spliceLine(bgLines[row], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// spliceLine replaces the cells of bgLine from startX onward with
// fgLine, keeping whatever background remains to either side.
func spliceLine(bgLine, fgLine string, startX int) string {
	left := ansi.Truncate(bgLine, startX, "")
	if pad := startX - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	endX := startX + ansi.StringWidth(fgLine)
	var right string
	if endX < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, endX, "")
	}

	return left + fgLine + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
