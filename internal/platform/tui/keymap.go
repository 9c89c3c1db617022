package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap holds the shell's key bindings.
// Direction keys are resolved by the game's own input mapper; the Steer
// binding only exists so the help view can list them.
type KeyMap struct {
	Steer      key.Binding
	Start      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.Start, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Steer, k.Start},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Steer: key.NewBinding(
			key.WithKeys(snake.DirectionKeys()...),
			key.WithHelp("←↑↓→/wasd", "steer"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
