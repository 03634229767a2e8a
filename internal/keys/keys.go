// Package keys contains keybinding definitions for everything outside
// the modal command language. Motions like gg or 5j are resolved by
// the input package; these bindings cover the keys that fall through
// it and the overlay modes.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level keybindings. They apply only
// when no command sequence is pending, so g? is an unknown sequence
// rather than help.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Command   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command prompt"),
		),
	}
}

// HelpKeyMap defines the keybindings while the help overlay is open.
type HelpKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Close    key.Binding
}

// DefaultHelpKeyMap returns the keybindings for the help overlay.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "?"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// PromptKeyMap defines the keybindings while the colon prompt is open.
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultPromptKeyMap returns the keybindings for the colon prompt.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
