package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the sandbox key bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Detonate    key.Binding
	PlaceBomb   key.Binding
	PlaceWall   key.Binding
	Erase       key.Binding
	ClearFlames key.Binding
	Save        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Detonate, k.PlaceBomb, k.PlaceWall, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Detonate, k.PlaceBomb, k.PlaceWall, k.Erase},
		{k.ClearFlames, k.Save, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Detonate: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "detonate"),
		),
		PlaceBomb: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "place bomb"),
		),
		PlaceWall: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "place wall"),
		),
		Erase: key.NewBinding(
			key.WithKeys("e", "x"),
			key.WithHelp("e", "erase cell"),
		),
		ClearFlames: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear flames"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save terrain"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
