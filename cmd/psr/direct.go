package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dkoosis/psr/internal/project"
	"github.com/dkoosis/psr/pkg/script"
)

// specialCommands resolve by exact name, then by synonym.
var specialCommands = []string{
	"dev", "start", "build", "deploy", "clean", "watch",
	"test", "format", "lint", "typecheck",
}

type notFoundError struct{ name string }

func (e notFoundError) Error() string { return fmt.Sprintf("Script '%s' not found", e.name) }
func (e notFoundError) Unwrap() error { return script.ErrNotFound }

// noRunScriptError reports a bare "run" with no run synonym to fall back on.
type noRunScriptError struct{}

func (noRunScriptError) Error() string {
	return "No script name provided and no 'run' script found"
}
func (noRunScriptError) Unwrap() error { return script.ErrNotFound }

// direct runs the script named by command (and, for "run", the next
// argument) and returns the child's exit code.
func (c *cli) direct(proj *project.Project, scripts []script.Script, command string, rest []string) (int, error) {
	name, args, err := pickScript(scripts, command, rest)
	if err != nil {
		return 0, err
	}
	s, _ := script.Find(scripts, name)

	var env []string
	if command == "dev" && (name == "start" || name == "run") {
		env = append(env, "NODE_ENV=dev")
	}
	c.logger.Debug("running script", "command", command, "script", name, "args", args)
	return c.runner().RunManaged(proj.Manager, s, args, env)
}

// pickScript resolves the script to run and the arguments passed through
// to it. Arguments start at the first flag-like word; a leading "--" is
// dropped.
func pickScript(scripts []script.Script, command string, rest []string) (string, []string, error) {
	var named string
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		named, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}

	switch {
	case slices.Contains(specialCommands, command):
		if named != "" {
			return "", nil, fmt.Errorf("Cannot specify script name with special command '%s'", command) //nolint:staticcheck // user-facing message
		}
		name, ok := script.Resolve(scripts, command)
		if !ok {
			return "", nil, notFoundError{command}
		}
		return name, rest, nil
	case command == "run":
		if named != "" {
			if _, ok := script.Find(scripts, named); !ok {
				return "", nil, notFoundError{named}
			}
			return named, rest, nil
		}
		name, ok := script.Resolve(scripts, "run")
		if !ok {
			return "", nil, noRunScriptError{}
		}
		return name, rest, nil
	}
	return "", nil, fmt.Errorf("Unknown command '%s'. Use 'run <script>' for custom scripts", command) //nolint:staticcheck // user-facing message
}
