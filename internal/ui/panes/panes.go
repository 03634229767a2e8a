// Package panes renders bordered panels with a title embedded in the frame.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/funkybooboo/lazycsv/internal/ui/styles"
)

// Rounded frame pieces
const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	edgeHorizontal    = "─"
	edgeVertical      = "│"
)

// Config describes one bordered panel.
type Config struct {
	Content string // rendered inside the frame, clipped to fit
	Width   int    // total width including the frame
	Height  int    // total height including the frame

	// Title is embedded in the top border, left-aligned, and truncated
	// when the frame is too narrow.
	Title string

	TitleColor  lipgloss.TerminalColor // defaults to TextPrimaryColor
	BorderColor lipgloss.TerminalColor // defaults to BorderDefaultColor
}

// Render draws content inside a rounded frame. Every content line is
// clipped to the inner width and padded so the right edge stays
// aligned, and short content is padded to Height so stacked panes keep
// their layout.
func Render(cfg Config) string {
	borderColor := cfg.BorderColor
	if borderColor == nil {
		borderColor = styles.BorderDefaultColor
	}
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.TextPrimaryColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	lines := strings.Split(cfg.Content, "\n")

	var b strings.Builder
	b.WriteString(topBorder(cfg.Title, innerWidth, borderStyle, titleStyle))
	for i := range contentHeight {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], innerWidth, "")
		}
		if gap := innerWidth - lipgloss.Width(line); gap > 0 {
			line += strings.Repeat(" ", gap)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(edgeVertical))
		b.WriteString(line)
		b.WriteString(borderStyle.Render(edgeVertical))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(cornerBottomLeft + strings.Repeat(edgeHorizontal, innerWidth) + cornerBottomRight))
	return b.String()
}

// topBorder builds the top edge, embedding the title when there is
// room. Layout: ╭─ Title ─────╮
func topBorder(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if title == "" || innerWidth < 5 {
		return borderStyle.Render(cornerTopLeft + strings.Repeat(edgeHorizontal, innerWidth) + cornerTopRight)
	}

	title = styles.TruncateString(title, innerWidth-4)
	rest := innerWidth - 3 - lipgloss.Width(title)

	return borderStyle.Render(cornerTopLeft+edgeHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(edgeHorizontal, rest)+cornerTopRight)
}
