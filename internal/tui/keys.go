package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevProject key.Binding
	NextProject key.Binding
	Search      key.Binding
	Select      key.Binding
	Help        key.Binding
	Quit        key.Binding

	SearchUp     key.Binding
	SearchDown   key.Binding
	SearchSelect key.Binding
	SearchCancel key.Binding
	ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevProject: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev project")),
		NextProject: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next project")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),

		SearchUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		SearchDown:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		SearchSelect: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		SearchCancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// browseKeys is the help.KeyMap shown outside search mode.
type browseKeys struct{ keyMap }

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Search, k.Quit, k.Help}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.PrevProject, k.NextProject},
		{k.Search, k.Help, k.Quit},
	}
}

// searchKeys is the help.KeyMap shown while searching.
type searchKeys struct{ keyMap }

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.SearchUp, k.SearchDown, k.SearchSelect, k.SearchCancel}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.ForceQuit}}
}
