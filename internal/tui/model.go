package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/psr/pkg/render"
	"github.com/dkoosis/psr/pkg/script"
)

// ActionKind tells the session what to do after the picker exits.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionRunScript
)

// Action is what the picker yields when it exits.
type Action struct {
	Kind   ActionKind
	Script script.Script
}

// ViewOptions configures drawing.
type ViewOptions struct {
	Palette   render.Palette
	ShowEmoji bool
}

// Model is the bubbletea model for the script picker. It handles exactly
// one key per Update and never schedules commands other than tea.Quit.
type Model struct {
	app    *App
	keys   keyMap
	help   help.Model
	search textinput.Model
	opts   ViewOptions

	width  int
	height int

	action Action
	err    error
}

// NewModel builds a picker over app.
func NewModel(app *App, opts ViewOptions) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter scripts"
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(app.Query())
	if app.Searching() {
		ti.Focus()
	}

	h := help.New()
	h.Styles.ShortKey = opts.Palette.Shortcut
	h.Styles.FullKey = opts.Palette.Shortcut
	h.Styles.ShortDesc = opts.Palette.Muted
	h.Styles.FullDesc = opts.Palette.Muted

	return Model{app: app, keys: defaultKeyMap(), help: h, search: ti, opts: opts, width: 80, height: 24}
}

// Action returns what the user chose.
func (m Model) Action() Action { return m.action }

// Err returns a fatal error raised during the session, such as a project
// that could no longer be read.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-6, 10)
		return m, nil
	case tea.KeyMsg:
		if m.app.Searching() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.action = Action{Kind: ActionQuit}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.app.PreviousScript()
	case key.Matches(msg, m.keys.Down):
		m.app.NextScript()
	case key.Matches(msg, m.keys.PrevProject):
		if err := m.app.PreviousProject(); err != nil {
			return m.fail(err)
		}
	case key.Matches(msg, m.keys.NextProject):
		if err := m.app.NextProject(); err != nil {
			return m.fail(err)
		}
	case key.Matches(msg, m.keys.Search):
		m.app.BeginSearch()
		m.search.SetValue("")
		m.search.Focus()
	case key.Matches(msg, m.keys.Select):
		if s, ok := m.app.SelectedScript(); ok {
			return m.run(s)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if s, ok := m.app.SelectedShortcut(msg.Runes[0]); ok {
			return m.run(s)
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.action = Action{Kind: ActionQuit}
		return m, tea.Quit
	case key.Matches(msg, m.keys.SearchCancel):
		m.app.EndSearch()
		m.search.Blur()
		m.search.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.SearchUp):
		m.app.PreviousScript()
		return m, nil
	case key.Matches(msg, m.keys.SearchDown):
		m.app.NextScript()
		return m, nil
	case key.Matches(msg, m.keys.SearchSelect):
		s, ok := m.app.SelectedScript()
		if !ok {
			return m, nil
		}
		m.app.EndSearch()
		m.search.Blur()
		return m.run(s)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.app.Query() {
		m.app.UpdateSearch(m.search.Value())
	}
	return m, cmd
}

func (m Model) run(s script.Script) (tea.Model, tea.Cmd) {
	m.action = Action{Kind: ActionRunScript, Script: s}
	return m, tea.Quit
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.action = Action{Kind: ActionQuit}
	return m, tea.Quit
}
