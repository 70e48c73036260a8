// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the card viewer.
type KeyMap struct {
	// Card
	ToggleStats key.Binding
	Next        key.Binding
	Prev        key.Binding
	Reload      key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Card
		ToggleStats: key.NewBinding(
			key.WithKeys("s", "enter", " "),
			key.WithHelp("s/enter", "toggle stats"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/→", "next card"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/←", "previous card"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload file"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleStats, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleStats, k.Next, k.Prev, k.Reload}, // Card
		{k.Help, k.Quit}, // General
	}
}

// SingleCard returns a copy of the keymap with card cycling disabled,
// for viewers showing exactly one record.
func (k KeyMap) SingleCard() KeyMap {
	k.Next.SetEnabled(false)
	k.Prev.SetEnabled(false)
	return k
}
