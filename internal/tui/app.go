// Package tui implements the interactive script picker: selection state,
// the bubbletea event loop, and the terminal session that is suspended
// while scripts run.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/dkoosis/psr/internal/config"
	"github.com/dkoosis/psr/internal/project"
	"github.com/dkoosis/psr/pkg/script"
)

// Row is one visual line of the script list: a script or a divider.
type Row struct {
	// Script indexes App's backing script slice; -1 for dividers.
	Script  int
	Divider bool
}

// App is the selection state. Projects live in one slice and the active
// project is tracked by index.
type App struct {
	projects []*project.Project
	current  int

	scripts []script.Script
	rows    []Row
	cursor  int

	searching bool
	query     string
}

// NewApp loads the scripts of projects[current].
func NewApp(projects []*project.Project, current int) (*App, error) {
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects: %w", project.ErrNoProject)
	}
	if current < 0 || current >= len(projects) {
		current = 0
	}
	scripts, err := projects[current].Scripts()
	if err != nil {
		return nil, err
	}
	a := &App{projects: projects, current: current, scripts: scripts}
	a.rebuild()
	return a, nil
}

// BuildProjects returns saved projects that still resolve plus the live
// project. The live project is inserted first unless its path is saved, in
// which case the saved entry is selected instead.
func BuildProjects(live *project.Project, settings *config.Settings, logger *slog.Logger) ([]*project.Project, int) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var projects []*project.Project
	current := -1
	if settings != nil {
		for _, saved := range settings.Projects {
			p, err := project.Create(saved.Name, saved.Path)
			if err != nil {
				logger.Warn("skipping saved project", "name", saved.Name, "err", err)
				continue
			}
			if live != nil && current < 0 && p.Path == live.Path {
				current = len(projects)
			}
			projects = append(projects, p)
		}
	}
	if current >= 0 || live == nil {
		return projects, max(current, 0)
	}
	return append([]*project.Project{live}, projects...), 0
}

// rebuild recomputes the visual rows from the script list and query.
func (a *App) rebuild() {
	visible := make([]int, 0, len(a.scripts))
	for i, s := range a.scripts {
		if s.MatchesSearch(a.query) {
			visible = append(visible, i)
		}
	}
	subset := make([]script.Script, len(visible))
	for i, idx := range visible {
		subset[i] = a.scripts[idx]
	}

	a.rows = a.rows[:0]
	for g, bucket := range script.GroupIndices(subset) {
		if g > 0 {
			a.rows = append(a.rows, Row{Script: -1, Divider: true})
		}
		for _, j := range bucket {
			a.rows = append(a.rows, Row{Script: visible[j]})
		}
	}
	if a.cursor >= len(a.rows) {
		a.cursor = 0
	}
}

// Rows returns the visual rows in display order.
func (a *App) Rows() []Row { return a.rows }

// Script returns the backing script a row points at.
func (a *App) Script(r Row) script.Script { return a.scripts[r.Script] }

// Scripts returns the active project's full script list.
func (a *App) Scripts() []script.Script { return a.scripts }

// Cursor returns the index of the highlighted visual row.
func (a *App) Cursor() int { return a.cursor }

// NextScript moves the cursor down, wrapping and skipping dividers.
func (a *App) NextScript() { a.step(1) }

// PreviousScript moves the cursor up, wrapping and skipping dividers.
func (a *App) PreviousScript() { a.step(-1) }

func (a *App) step(delta int) {
	n := len(a.rows)
	if n == 0 {
		return
	}
	i := a.cursor
	for range n {
		i = (i + delta + n) % n
		if !a.rows[i].Divider {
			a.cursor = i
			return
		}
	}
}

// SelectedScript returns the script under the cursor.
func (a *App) SelectedScript() (script.Script, bool) {
	if a.cursor < 0 || a.cursor >= len(a.rows) || a.rows[a.cursor].Divider {
		return script.Script{}, false
	}
	return a.scripts[a.rows[a.cursor].Script], true
}

// SelectedShortcut returns the first script bound to r, regardless of
// cursor position or search filter.
func (a *App) SelectedShortcut(r rune) (script.Script, bool) {
	for _, s := range a.scripts {
		if s.Shortcut == r && r != 0 {
			return s, true
		}
	}
	return script.Script{}, false
}

// Projects returns every known project.
func (a *App) Projects() []*project.Project { return a.projects }

// ProjectIndex is the position of the active project.
func (a *App) ProjectIndex() int { return a.current }

// CurrentProject returns the active project.
func (a *App) CurrentProject() *project.Project { return a.projects[a.current] }

// NextProject switches to the following project, wrapping.
func (a *App) NextProject() error { return a.switchProject(1) }

// PreviousProject switches to the preceding project, wrapping.
func (a *App) PreviousProject() error { return a.switchProject(-1) }

// switchProject re-reads the target project's scripts. On failure nothing
// changes and the error is returned.
func (a *App) switchProject(delta int) error {
	n := len(a.projects)
	if n < 2 {
		return nil
	}
	next := (a.current + delta + n) % n
	scripts, err := a.projects[next].Scripts()
	if err != nil {
		return fmt.Errorf("switching to %s: %w", a.projects[next].DisplayName(), err)
	}
	a.current = next
	a.scripts = scripts
	a.cursor = 0
	a.rebuild()
	return nil
}

// Reload re-reads the active project's scripts, keeping the cursor when it
// is still in range.
func (a *App) Reload() error {
	scripts, err := a.CurrentProject().Scripts()
	if err != nil {
		return err
	}
	a.scripts = scripts
	a.rebuild()
	if len(a.rows) > 0 && a.rows[a.cursor].Divider {
		a.cursor = 0
	}
	return nil
}

// Searching reports whether search mode is active.
func (a *App) Searching() bool { return a.searching }

// Query returns the current search text.
func (a *App) Query() string { return a.query }

// BeginSearch enters search mode with an empty query.
func (a *App) BeginSearch() {
	a.searching = true
	a.query = ""
	a.cursor = 0
	a.rebuild()
}

// UpdateSearch filters the list by query and moves the cursor to the top.
func (a *App) UpdateSearch(query string) {
	a.query = query
	a.cursor = 0
	a.rebuild()
}

// EndSearch leaves search mode and restores the unfiltered list.
func (a *App) EndSearch() {
	a.searching = false
	a.query = ""
	a.cursor = 0
	a.rebuild()
}
