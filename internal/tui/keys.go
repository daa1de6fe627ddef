package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Reveal, Flag          key.Binding
	NewGame               key.Binding
	Beginner              key.Binding
	Intermediate          key.Binding
	Expert                key.Binding
	Quit                  key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "w"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "s"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h", "a"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "d"),
		key.WithHelp("→/l", "right"),
	),
	Reveal: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "reveal"),
	),
	Flag: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "flag"),
	),
	NewGame: key.NewBinding(
		key.WithKeys("enter", "n"),
		key.WithHelp("enter", "new game"),
	),
	Beginner: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "beginner"),
	),
	Intermediate: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "intermediate"),
	),
	Expert: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "expert"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{
		k.Reveal, k.Flag, k.NewGame,
		k.Beginner, k.Intermediate, k.Expert, k.Quit,
	}
}
