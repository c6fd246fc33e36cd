package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the week view.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	PrevDay    key.Binding
	NextDay    key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding
	Move       key.Binding
	Resize     key.Binding
	Warmup     key.Binding
	Travel     key.Binding
	Assign     key.Binding
	NewSession key.Binding
	Delete     key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous session"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next session"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next week"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move session"),
		),
		Resize: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resize session"),
		),
		Warmup: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "resize warm-up"),
		),
		Travel: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "resize travel"),
		),
		Assign: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assign player"),
		),
		NewSession: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new session"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete session"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop here"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
