// Package toaster shows transient notices above the grid, such as yank
// confirmations and reload reports.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/funkybooboo/lazycsv/internal/ui/overlay"
	"github.com/funkybooboo/lazycsv/internal/ui/styles"
)

// DefaultDuration is how long a notice stays up before auto-dismissing.
const DefaultDuration = 3 * time.Second

// maxToastWidth caps the notice text before it wraps onto extra lines.
const maxToastWidth = 56

// Level determines the border color and prefix glyph of the notice.
type Level int

const (
	// LevelInfo marks neutral notices like file reloads.
	LevelInfo Level = iota
	// LevelSuccess marks completed operations like a yank.
	LevelSuccess
	// LevelWarn marks refused operations in read-only mode.
	LevelWarn
	// LevelError marks failures like an unreadable clipboard.
	LevelError
)

// decor pairs the prefix glyph with the border color for a level.
type decor struct {
	glyph  string
	border lipgloss.TerminalColor
}

var decors = map[Level]decor{
	LevelInfo:    {"• ", styles.ToastBorderInfoColor},
	LevelSuccess: {"✓ ", styles.ToastBorderSuccessColor},
	LevelWarn:    {"! ", styles.ToastBorderWarnColor},
	LevelError:   {"✗ ", styles.ToastBorderErrorColor},
}

// DismissMsg asks the app to take the current notice down.
type DismissMsg struct{}

// ScheduleDismiss emits a DismissMsg once d has elapsed.
func ScheduleDismiss(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{}
	})
}

// Model is the notice currently on screen, if any.
type Model struct {
	message string
	level   Level
	visible bool
}

// New returns a hidden toaster.
func New() Model {
	return Model{}
}

// Show replaces the current notice with message at the given level.
func (m Model) Show(message string, level Level) Model {
	return Model{message: message, level: level, visible: true}
}

// Hide takes the notice down.
func (m Model) Hide() Model {
	return Model{}
}

// Visible reports whether a notice is on screen.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the notice as a bordered box, wrapping long messages.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	d, ok := decors[m.level]
	if !ok {
		d = decors[LevelInfo]
	}

	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.border)

	return box.Render(wordwrap.String(d.glyph+m.message, maxToastWidth))
}

// Overlay composites the notice near the top edge of bg so it never
// covers the status bar.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Top,
		PadY:     1,
	}, m.View(), bg)
}
