// psr picks and runs project scripts across package managers.
//
// Usage:
//
//	psr                      key menu for the project in the current directory
//	psr --tui                full-screen picker across saved projects
//	psr --list               print every script
//	psr test                 run the project's test script, by name or synonym
//	psr run <script> [-- args...]
//	psr projects add|remove|rename|list
//
// Supported projects: npm, yarn, pnpm, bun, deno, cargo, poetry, uv, pip,
// and Go modules (with Makefile and magefile targets).
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/psr/internal/config"
	"github.com/dkoosis/psr/internal/logging"
	"github.com/dkoosis/psr/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// usageError marks bad flags or arguments; run maps it to exit code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// cli carries streams and state shared by the root command and subcommands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags struct {
		dir     string
		project string
		verbose bool
		list    bool
		theme   string
		tui     bool
	}

	logger   *slog.Logger
	closeLog func() error
	settings *config.Settings
	code     int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, closeLog: func() error { return nil }}
	root := c.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if cerr := c.closeLog(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "psr: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return c.code
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "psr [command] [script] [-- args...]",
		Short: "Pick and run project scripts",
		Long: "psr finds the scripts of the project in the current directory and runs them.\n" +
			"Special commands (dev, start, build, deploy, clean, watch, test, format, lint,\n" +
			"typecheck) resolve by name or synonym; use 'run <script>' for anything else.",
		Version:           version.Version,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runRoot,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(version.String())
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	fs := root.Flags()
	fs.SetInterspersed(false)
	fs.StringVarP(&c.flags.dir, "dir", "d", "", "start in `dir` instead of the current directory")
	fs.StringVarP(&c.flags.project, "project", "p", "", "use the saved project `alias`")
	fs.BoolVarP(&c.flags.list, "list", "l", false, "list scripts and exit")
	fs.StringVar(&c.flags.theme, "theme", "", "color theme: dark, light, nocolor")
	fs.BoolVar(&c.flags.tui, "tui", false, "start the full-screen picker")
	root.PersistentFlags().BoolVarP(&c.flags.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(c.projectsCmd())
	return root
}

// setup builds the logger and loads settings for every command.
func (c *cli) setup(*cobra.Command, []string) error {
	logger, closeLog, err := logging.New(c.stderr, logging.Options{Verbose: c.flags.verbose}.FromEnv())
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	c.logger, c.closeLog = logger, closeLog

	settings, err := config.Load(logger)
	if err != nil {
		return err
	}
	c.settings = settings
	return nil
}
