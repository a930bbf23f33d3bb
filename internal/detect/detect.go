// Package detect identifies the package manager that owns a directory and
// reads the scripts it exposes.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dkoosis/psr/pkg/script"
)

// Kind represents a recognized package manager.
type Kind int

const (
	Unknown Kind = iota
	Npm
	Yarn
	Pnpm
	Bun
	Deno
	Cargo
	Poetry
	Uv
	Pip
	Go
)

var kindNames = [...]string{
	Unknown: "unknown",
	Npm:     "npm",
	Yarn:    "yarn",
	Pnpm:    "pnpm",
	Bun:     "bun",
	Deno:    "deno",
	Cargo:   "cargo",
	Poetry:  "poetry",
	Uv:      "uv",
	Pip:     "pip",
	Go:      "go",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsNode reports whether k runs package.json scripts.
func (k Kind) IsNode() bool {
	switch k {
	case Npm, Yarn, Pnpm, Bun, Deno:
		return true
	}
	return false
}

// Manager is a package manager rooted at a directory.
type Manager struct {
	Kind Kind
	Dir  string
}

// Sniff examines dir and returns the package manager that owns it.
// Node is checked first, then Rust, Python and Go.
func Sniff(dir string) Kind {
	for _, sniff := range []func(string) Kind{sniffNode, sniffRust, sniffPython, sniffGo} {
		if k := sniff(dir); k != Unknown {
			return k
		}
	}
	return Unknown
}

// Scripts reads the scripts the manager exposes. The result is never
// cached; every call reflects the files on disk.
func (m Manager) Scripts() ([]script.Script, error) {
	var (
		scripts []script.Script
		err     error
	)
	switch {
	case m.Kind.IsNode():
		scripts, err = nodeScripts(m.Dir)
	case m.Kind == Cargo:
		scripts, err = cargoScripts(m.Dir)
	case m.Kind == Poetry, m.Kind == Uv, m.Kind == Pip:
		scripts, err = pythonScripts(m.Kind, m.Dir)
	case m.Kind == Go:
		scripts, err = goScripts(m.Dir)
	default:
		return nil, fmt.Errorf("no package manager in %s", m.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("%s scripts in %s: %w", m.Kind, m.Dir, err)
	}
	return scripts, nil
}

// RunCommand returns the argv that runs s through the manager. Node
// managers run scripts by name; everything else runs the command text.
func (m Manager) RunCommand(s script.Script) []string {
	switch m.Kind {
	case Npm, Yarn, Pnpm, Bun:
		return []string{m.Kind.String(), "run", s.Name}
	case Deno:
		return []string{"deno", "task", s.Name}
	}
	return ShellCommand(s.Command)
}

// ShellCommand wraps command text for the platform shell.
func ShellCommand(command string) []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C", command}
	}
	return []string{"sh", "-c", command}
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func fileContains(dir, name, needle string) bool {
	data, err := os.ReadFile(filepath.Join(dir, name))
	return err == nil && strings.Contains(string(data), needle)
}
