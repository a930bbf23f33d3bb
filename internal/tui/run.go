package tui

import (
	"context"
	"errors"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/psr/internal/config"
	"github.com/dkoosis/psr/internal/project"
	"github.com/dkoosis/psr/internal/runner"
	"github.com/dkoosis/psr/pkg/render"
	"github.com/dkoosis/psr/pkg/script"
)

// ContinuePrompt is shown after a script exits.
const ContinuePrompt = "Press 'q' to quit or any other key to continue..."

// terminal is the part of Session the run loop depends on.
type terminal interface {
	Acquire() error
	Release() error
	Present(tea.Model) (tea.Model, error)
	PromptKey(msg string) (rune, error)
}

// executor runs a script in a directory and returns its exit code.
type executor interface {
	Run(s script.Script, dir string) (int, error)
}

type options struct {
	resolved config.Resolved
	logger   *slog.Logger
	term     terminal
	exec     executor
}

// Option configures Run.
type Option func(*options)

// WithResolved sets the effective theme and emoji settings.
func WithResolved(r config.Resolved) Option {
	return func(o *options) { o.resolved = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func withTerminal(t terminal) Option {
	return func(o *options) { o.term = t }
}

func withExecutor(e executor) Option {
	return func(o *options) { o.exec = e }
}

// Run is the TUI entry point. It shows live plus the saved projects from
// settings and loops until the user quits the picker: pick a script, run it
// with the terminal suspended, wait for a key, show the error splash on
// failure.
// The caller's terminal mode is restored on every return path.
func Run(ctx context.Context, live *project.Project, settings *config.Settings, opts ...Option) error {
	o := options{resolved: config.Resolved{Theme: render.Dark, ShowEmoji: true}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.term == nil {
		o.term = NewSession(os.Stdin, os.Stdout, o.logger, tea.WithContext(ctx))
	}
	if o.exec == nil {
		o.exec = runner.New(o.logger)
	}

	projects, current := BuildProjects(live, settings, o.logger)
	app, err := NewApp(projects, current)
	if err != nil {
		return err
	}

	c := &controller{
		app:  app,
		term: o.term,
		exec: o.exec,
		view: ViewOptions{
			Palette:   render.PaletteFor(o.resolved.Theme),
			ShowEmoji: o.resolved.ShowEmoji,
		},
		logger: o.logger,
	}
	return c.loop()
}

type controller struct {
	app    *App
	term   terminal
	exec   executor
	view   ViewOptions
	logger *slog.Logger
}

func (c *controller) loop() (err error) {
	if err := c.term.Acquire(); err != nil {
		return err
	}
	defer func() {
		if rerr := c.term.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	for {
		final, err := c.term.Present(NewModel(c.app, c.view))
		if err != nil {
			return err
		}
		m, ok := final.(Model)
		if !ok {
			return nil
		}
		if m.Err() != nil {
			return m.Err()
		}
		action := m.Action()
		if action.Kind != ActionRunScript {
			return nil
		}
		if err := c.runScript(action.Script); err != nil {
			return err
		}
	}
}

// runScript executes s with the terminal suspended, then waits for a key.
// A non-zero exit shows the error splash unless the key was 'q'. Either way
// the scripts are re-read before the picker returns.
func (c *controller) runScript(s script.Script) error {
	dir := c.app.CurrentProject().Path
	c.logger.Debug("running script", "name", s.Name, "dir", dir)

	code, err := c.exec.Run(s, dir)
	if err != nil {
		return err
	}
	key, err := c.term.PromptKey(ContinuePrompt)
	if err != nil {
		return err
	}
	if code != 0 && key != 'q' {
		if _, err := c.term.Present(newSplash(code, c.view.Palette)); err != nil {
			return err
		}
	}
	return c.app.Reload()
}
