package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the chat view.
type KeyMap struct {
	Send       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// helpLine renders the bindings as a single status line.
func (k KeyMap) helpLine() string {
	var s string
	for i, b := range []key.Binding{k.Send, k.ScrollUp, k.ScrollDown, k.Quit} {
		if i > 0 {
			s += " | "
		}
		h := b.Help()
		s += h.Key + ": " + h.Desc
	}
	return s
}
