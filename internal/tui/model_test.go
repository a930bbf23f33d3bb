package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/psr/pkg/render"
)

func testViewOptions() ViewOptions {
	return ViewOptions{Palette: render.PaletteFor(render.NoColor), ShowEmoji: true}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func finalModel(t *testing.T, tm *teatest.TestModel) Model {
	t.Helper()
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	m, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	return m
}

func TestModel_RunsSelectedScript_When_EnterPressed(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, npmProjectWith(t, map[string]string{
		"start":   "node .",
		"compile": "tsc",
	}))
	tm := teatest.NewTestModel(t, NewModel(app, testViewOptions()), teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m := finalModel(t, tm)
	assert.Equal(t, ActionRunScript, m.Action().Kind)
	assert.Equal(t, "compile", m.Action().Script.Name)
}

func TestModel_RunsShortcutScript_When_ShortcutKeyPressed(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, npmProjectWith(t, map[string]string{
		"start": "node .",
		"lint":  "false",
	}))
	tm := teatest.NewTestModel(t, NewModel(app, testViewOptions()), teatest.WithInitialTermSize(80, 24))
	tm.Send(runes("l"))

	m := finalModel(t, tm)
	assert.Equal(t, ActionRunScript, m.Action().Kind)
	assert.Equal(t, "lint", m.Action().Script.Name)
}

func TestModel_Quits_When_QPressed(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, npmProjectWith(t, map[string]string{"start": "node ."}))
	tm := teatest.NewTestModel(t, NewModel(app, testViewOptions()), teatest.WithInitialTermSize(80, 24))
	tm.Send(runes("q"))

	m := finalModel(t, tm)
	assert.Equal(t, ActionQuit, m.Action().Kind)
	assert.NoError(t, m.Err())
}

func TestModel_FiltersAndRuns_When_Searching(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, npmProjectWith(t, map[string]string{
		"start":            "node server.js",
		"test":             "jest",
		"build:test-utils": "tsc -p test-utils",
	}))
	tm := teatest.NewTestModel(t, NewModel(app, testViewOptions()), teatest.WithInitialTermSize(80, 24))
	tm.Send(runes("/"))
	tm.Send(runes("j"))
	tm.Send(runes("e"))
	tm.Send(runes("s"))
	tm.Send(runes("t"))
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m := finalModel(t, tm)
	assert.Equal(t, ActionRunScript, m.Action().Kind)
	assert.Equal(t, "test", m.Action().Script.Name)
	assert.False(t, app.Searching())
}

func TestModel_ShowsQueryAndMatches_When_Searching(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, npmProjectWith(t, map[string]string{
		"start": "node server.js",
		"test":  "jest",
	}))
	var m tea.Model = NewModel(app, testViewOptions())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = m.Update(runes("/"))
	m, _ = m.Update(runes("jest"))

	view := m.View()
	assert.Contains(t, view, "/ jest")
	assert.Contains(t, view, "test")
	assert.NotContains(t, view, "server.js")
	assert.Equal(t, "jest", app.Query())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.Searching())
	assert.Empty(t, app.Query())
	assert.Contains(t, m.View(), "server.js")
}

func TestModel_ReturnsError_When_ProjectSwitchFails(t *testing.T) {
	t.Parallel()

	first := npmProjectWith(t, map[string]string{"start": "node ."})
	second := npmProjectWith(t, map[string]string{"dev": "vite"})
	app := newTestApp(t, first, second)
	second.Path = second.Path + "-missing"

	tm := teatest.NewTestModel(t, NewModel(app, testViewOptions()), teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.KeyMsg{Type: tea.KeyRight})

	m := finalModel(t, tm)
	assert.Error(t, m.Err())
	assert.Equal(t, 0, app.ProjectIndex())
}

func TestModel_View_DrawsProjectsScriptsAndDetail(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, npmProjectWith(t, map[string]string{
		"start": "node .",
		"hello": "echo hi",
	}))
	m := NewModel(app, testViewOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := updated.View()

	assert.Contains(t, view, "Current Directory")
	assert.Contains(t, view, "npm")
	assert.Contains(t, view, "[s]")
	assert.Contains(t, view, "start")
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "─")
	assert.Contains(t, view, "Development · serve")
}

func TestModel_View_FitsWindow_When_FullHelpAndSearchShown(t *testing.T) {
	t.Parallel()

	scripts := make(map[string]string, 30)
	for i := 1; i <= 30; i++ {
		scripts[fmt.Sprintf("task%02d", i)] = fmt.Sprintf("echo %d", i)
	}
	app := newTestApp(t, npmProjectWith(t, scripts))
	const height = 16
	var m tea.Model = NewModel(app, testViewOptions())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: height})
	for range 29 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = m.Update(runes("?"))

	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), height)
	assert.Contains(t, view, "Current Directory")
	assert.Contains(t, view, "task30")

	m, _ = m.Update(runes("/"))
	view = m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), height)
	assert.Contains(t, view, "Current Directory")
	assert.Contains(t, view, "task01")
	assert.NotContains(t, view, "task30")
}

func TestVisibleWindow_KeepsCursorInView(t *testing.T) {
	t.Parallel()

	start, end := visibleWindow(10, 0, 4)
	assert.Equal(t, [2]int{0, 4}, [2]int{start, end})

	start, end = visibleWindow(10, 7, 4)
	assert.Equal(t, [2]int{4, 8}, [2]int{start, end})

	start, end = visibleWindow(3, 2, 10)
	assert.Equal(t, [2]int{0, 3}, [2]int{start, end})
}

func TestSplash_ShowsExitCodeAndQuitsOnAnyKey(t *testing.T) {
	t.Parallel()

	s := newSplash(1, render.PaletteFor(render.NoColor))
	view := s.View()
	assert.Contains(t, view, "Script Error")
	assert.Contains(t, view, "The script exited with code: 1")
	assert.Contains(t, view, "Press any key to continue...")

	_, cmd := s.Update(runes("x"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
