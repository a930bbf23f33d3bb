package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/psr/pkg/render"
)

// splashModel reports a failed script and exits on any key.
type splashModel struct {
	code    int
	palette render.Palette
	width   int
	height  int
}

func newSplash(code int, palette render.Palette) splashModel {
	return splashModel{code: code, palette: palette, width: 80, height: 24}
}

func (m splashModel) Init() tea.Cmd { return nil }

func (m splashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m splashModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.palette.Error.Render("Script Error"),
		"",
		fmt.Sprintf("The script exited with code: %d", m.code),
		"",
		m.palette.Muted.Render("Press any key to continue..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.palette.Border.Render(body))
}
