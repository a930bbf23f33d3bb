// Package runner executes scripts as child processes that own the terminal
// until they exit.
package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/dkoosis/psr/internal/detect"
	"github.com/dkoosis/psr/pkg/script"
)

// Runner runs scripts synchronously with inherited standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// LookPath locates manager binaries; exec.LookPath when nil.
	LookPath func(string) (string, error)
}

// New returns a Runner wired to the process's standard streams.
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr, Logger: logger}
}

// Run executes s.Command through the shell in dir and blocks until it exits.
// It returns the exit code (0 on success). A non-nil error means the shell
// could not be started.
func (r *Runner) Run(s script.Script, dir string) (int, error) {
	return r.exec(detect.ShellCommand(s.Command), dir, nil)
}

// RunManaged executes s through its package manager with extra args and
// environment. When the manager binary is not installed the command text
// runs through the shell instead.
func (r *Runner) RunManaged(m detect.Manager, s script.Script, args, env []string) (int, error) {
	argv := m.RunCommand(s)
	if m.Kind.IsNode() {
		if _, err := r.lookPath(argv[0]); err != nil {
			r.Logger.Debug("manager not on PATH, running command text", "manager", argv[0])
			argv = detect.ShellCommand(s.Command)
		}
	}
	if len(args) > 0 {
		if argv[0] == "sh" || argv[0] == "cmd" {
			last := len(argv) - 1
			argv[last] = strings.TrimSpace(argv[last] + " " + shellquote.Join(args...))
		} else {
			argv = append(argv, args...)
		}
	}
	return r.exec(argv, m.Dir, env)
}

func (r *Runner) exec(argv []string, dir string, env []string) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	// The child shares our process group, so terminal interrupts reach it
	// directly. Swallow them here so psr survives an interrupted script.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, getInterruptSignals()...)
	defer signal.Stop(interrupts)

	r.Logger.Debug("running script", "argv", argv, "dir", dir)
	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %s: %w", argv[0], err)
	}
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code, ok := getExitCodeFromError(exitErr); ok {
			r.Logger.Debug("script exited", "code", code)
			return code, nil
		}
		return -1, nil
	}
	return -1, fmt.Errorf("waiting for %s: %w", argv[0], err)
}

func (r *Runner) lookPath(file string) (string, error) {
	if r.LookPath != nil {
		return r.LookPath(file)
	}
	return exec.LookPath(file)
}
