package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/psr/internal/config"
	"github.com/dkoosis/psr/internal/menu"
	"github.com/dkoosis/psr/internal/project"
	"github.com/dkoosis/psr/internal/runner"
	"github.com/dkoosis/psr/internal/tui"
	"github.com/dkoosis/psr/pkg/script"
)

func (c *cli) runRoot(cmd *cobra.Command, args []string) error {
	resolved, err := c.settings.Resolve(config.Flags{Theme: c.flags.theme})
	if err != nil {
		return usageError{err}
	}

	dir, err := c.workingDir()
	if err != nil {
		return err
	}
	proj, err := project.Detect(dir)
	if err != nil {
		return fmt.Errorf("could not detect package manager in %s: %w", dir, err)
	}
	c.logger.Debug("detected project", "kind", proj.Manager.Kind, "path", proj.Path)

	scripts, err := proj.Scripts()
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		fmt.Fprintln(c.stdout, "No scripts found")
		return nil
	}

	switch {
	case c.flags.list:
		c.list(scripts)
		return nil
	case len(args) > 0:
		c.code, err = c.direct(proj, scripts, args[0], args[1:])
		return err
	case c.flags.tui:
		return tui.Run(cmd.Context(), proj, c.settings, tui.WithResolved(resolved), tui.WithLogger(c.logger))
	}
	return c.interactive(cmd, proj, scripts, resolved)
}

func (c *cli) workingDir() (string, error) {
	if c.flags.project != "" {
		path, ok := c.settings.ProjectPath(c.flags.project)
		if !ok {
			return "", fmt.Errorf("Project '%s' not found", c.flags.project) //nolint:staticcheck // user-facing message
		}
		return path, nil
	}
	if c.flags.dir != "" {
		return c.flags.dir, nil
	}
	return os.Getwd()
}

func (c *cli) list(scripts []script.Script) {
	fmt.Fprintln(c.stdout, "Available scripts:")
	for _, s := range scripts {
		fmt.Fprintf(c.stdout, "  %s - %s\n", s.Name, s.Command)
		if s.Description != "" {
			fmt.Fprintf(c.stdout, "    Description: %s\n", s.Description)
		}
		fmt.Fprintln(c.stdout)
	}
}

// interactive shows the key menu and runs the chosen script, or hands over
// to the TUI.
func (c *cli) interactive(cmd *cobra.Command, proj *project.Project, scripts []script.Script, resolved config.Resolved) error {
	in, inOK := c.stdin.(*os.File)
	out, outOK := c.stdout.(*os.File)
	if !inOK || !outOK {
		return errors.New("interactive mode needs a terminal; use --list or name a script")
	}

	session := tui.NewSession(in, out, c.logger)
	choice, err := menu.Run(out, session, proj.Path, scripts)
	if err != nil {
		return err
	}
	switch choice.Kind {
	case menu.SwitchToTUI:
		return tui.Run(cmd.Context(), proj, c.settings, tui.WithResolved(resolved), tui.WithLogger(c.logger))
	case menu.RunScript:
		c.code, err = c.runner().RunManaged(proj.Manager, choice.Script, nil, nil)
		return err
	}
	return nil
}

func (c *cli) runner() *runner.Runner {
	r := runner.New(c.logger)
	r.Stdin, r.Stdout, r.Stderr = c.stdin, c.stdout, c.stderr
	return r
}
