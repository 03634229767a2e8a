// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Light/dark pairs so the grid stays readable on both
// terminal backgrounds.
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Cell text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Row numbers, column letters
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#A8A8A0", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Help descriptions

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#A8A8A0", Dark: "#696969"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Accent for the cursor row marker and active file tab
	AccentColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
)

// Grid surfaces.
var (
	HeaderStyle       = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	LetterRowStyle    = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	RowNumberStyle    = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	CellStyle         = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	SelectedCell      = lipgloss.NewStyle().Reverse(true).Bold(true)
	CursorMarkerStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	MutedTextStyle    = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// Status bar, file strip and command prompt.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	ModeIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusSuccessColor)
	StatusMessageStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	FileActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	FileInactiveStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	PromptStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
)

// Overlays and toasts.
var (
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#4A4A44", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#A8A8A0", Dark: "#8C8C8C"}

	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = AccentColor
	ToastBorderWarnColor    = StatusWarningColor
)
