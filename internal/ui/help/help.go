// Package help contains the scrollable command reference overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/funkybooboo/lazycsv/internal/keys"
	"github.com/funkybooboo/lazycsv/internal/ui/overlay"
	"github.com/funkybooboo/lazycsv/internal/ui/styles"
)

const (
	viewportMaxHeight = 30
	viewportMinHeight = 5
	boxMinWidth       = 40
)

// CloseMsg is sent when the overlay should be closed.
type CloseMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(1)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(12)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)
)

// Model is the help overlay state.
type Model struct {
	keys     keys.HelpKeyMap
	visible  bool
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden help overlay.
func New() Model {
	return Model{keys: keys.DefaultHelpKeyMap()}
}

// Toggle flips visibility and rewinds the scroll position.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoTop()
	}
	return m
}

// Visible reports whether the overlay is showing.
func (m Model) Visible() bool {
	return m.visible
}

// SetSize records the terminal dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.refreshViewport()
	return m
}

// Update handles scroll and close keys while the overlay is visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Close):
		m.visible = false
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(keyMsg, m.keys.Down):
		m.viewport.ScrollDown(1)

	case key.Matches(keyMsg, m.keys.Up):
		m.viewport.ScrollUp(1)

	case key.Matches(keyMsg, m.keys.PageDown):
		m.viewport.ScrollDown(m.viewport.Height)

	case key.Matches(keyMsg, m.keys.PageUp):
		m.viewport.ScrollUp(m.viewport.Height)

	default:
		switch keyMsg.String() {
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}
	}

	return m, nil
}

// View renders the bordered help box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var b strings.Builder
	b.WriteString(titleStyle.Render("lazycsv help"))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(" j/k scroll · esc close"))

	return boxStyle.Width(boxWidth).Render(b.String())
}

// Overlay renders the help box centered over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	content := renderReference()
	contentHeight := lipgloss.Height(content)

	// Header, footer, and borders take six rows.
	maxAllowed := m.height - 6
	viewportHeight := min(viewportMaxHeight, maxAllowed, contentHeight)
	viewportHeight = max(viewportHeight, viewportMinHeight)

	offset := m.viewport.YOffset
	m.viewport = viewport.New(m.boxWidth()-2, viewportHeight)
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(offset)
}

func (m Model) boxWidth() int {
	w := lipgloss.Width(renderReference()) + 2
	return max(min(w, m.width-4), boxMinWidth)
}

// renderReference builds the two-column command reference.
func renderReference() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4).PaddingLeft(1)

	var left strings.Builder
	left.WriteString(sectionStyle.Render("Motions"))
	left.WriteString("\n")
	left.WriteString(entry("h j k l", "move cursor"))
	left.WriteString(entry("arrows", "move cursor"))
	left.WriteString(entry("enter", "next row"))
	left.WriteString(entry("w", "next non-empty cell"))
	left.WriteString(entry("b", "previous non-empty cell"))
	left.WriteString(entry("e", "last non-empty cell"))

	left.WriteString(sectionStyle.Render("Jumps"))
	left.WriteString("\n")
	left.WriteString(entry("gg / G", "first / last row"))
	left.WriteString(entry("15G", "row 15"))
	left.WriteString(entry("0 / $", "first / last column"))
	left.WriteString(entry("home / end", "first / last row"))

	left.WriteString(sectionStyle.Render("Scrolling"))
	left.WriteString("\n")
	left.WriteString(entry("ctrl+d", "page down"))
	left.WriteString(entry("ctrl+u", "page up"))
	left.WriteString(entry("pgup/pgdn", "page up / down"))
	left.WriteString(entry("zt zz zb", "cursor to top/center/bottom"))

	var right strings.Builder
	right.WriteString(sectionStyle.Render("Counts"))
	right.WriteString("\n")
	right.WriteString(entry("5j", "move five rows down"))
	right.WriteString(entry("3w", "three cells forward"))

	right.WriteString(sectionStyle.Render("Files"))
	right.WriteString("\n")
	right.WriteString(entry("]", "next file in directory"))
	right.WriteString(entry("[", "previous file in directory"))

	right.WriteString(sectionStyle.Render("Clipboard"))
	right.WriteString("\n")
	right.WriteString(entry("yy", "yank current row"))

	right.WriteString(sectionStyle.Render("Command line"))
	right.WriteString("\n")
	right.WriteString(entry(":15", "jump to row 15"))
	right.WriteString(entry(":c A", "jump to column A"))
	right.WriteString(entry(":q", "quit"))
	right.WriteString(entry(":h", "help"))

	right.WriteString(sectionStyle.Render("General"))
	right.WriteString("\n")
	right.WriteString(entry("?", "toggle help"))
	right.WriteString(entry("esc", "cancel pending command"))
	right.WriteString(entry("q / ctrl+c", "quit"))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(left.String()),
		columnStyle.Render(right.String()),
	)
}

func entry(k, desc string) string {
	return keyStyle.Render(k) + descStyle.Render(desc) + "\n"
}
