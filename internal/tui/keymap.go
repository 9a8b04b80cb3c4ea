package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the game's key bindings.
type KeyMap struct {
	Start     key.Binding
	StepShort key.Binding
	StepLong  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.StepShort, k.StepLong, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Help, k.Quit},
		{k.StepShort, k.StepLong},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "start"),
		),
		StepShort: key.NewBinding(
			key.WithKeys("left", "h", "1", " "),
			key.WithHelp("←/h/space", "jump 1"),
		),
		StepLong: key.NewBinding(
			key.WithKeys("right", "l", "2"),
			key.WithHelp("→/l", "jump 2"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
