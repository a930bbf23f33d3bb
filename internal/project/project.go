// Package project binds a directory to its detected package manager.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkoosis/psr/internal/detect"
	"github.com/dkoosis/psr/pkg/script"
)

// ErrNoProject is returned when no package manager is found.
var ErrNoProject = errors.New("no package manager detected")

// Project is a directory with a recognized package manager.
type Project struct {
	// Name is the saved alias; empty for the live current-directory project.
	Name    string
	Path    string
	Manager detect.Manager
}

// DisplayName is the label shown in project lists.
func (p *Project) DisplayName() string {
	if p.Name == "" {
		return "Current Directory"
	}
	return p.Name
}

// Scripts reads the project's scripts from disk. Results are not cached.
func (p *Project) Scripts() ([]script.Script, error) {
	if _, err := os.Stat(p.Path); err != nil {
		return nil, fmt.Errorf("project %s: %w", p.DisplayName(), err)
	}
	return p.Manager.Scripts()
}

// Detect walks upward from dir and returns the nearest directory with a
// recognized package manager. When dir is under the user's home directory
// the walk stops at home; otherwise it stops at the filesystem root.
func Detect(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	home, _ := os.UserHomeDir()
	stop := ""
	if home != "" && within(abs, home) {
		stop = filepath.Clean(home)
	}

	for current := abs; ; {
		if kind := detect.Sniff(current); kind != detect.Unknown {
			return &Project{Path: current, Manager: detect.Manager{Kind: kind, Dir: current}}, nil
		}
		parent := filepath.Dir(current)
		if current == stop || parent == current {
			break
		}
		current = parent
	}
	return nil, fmt.Errorf("%s: %w", abs, ErrNoProject)
}

// Create builds a named project for a saved alias. Unlike Detect it does
// not walk upward.
func Create(alias, path string) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	kind := detect.Sniff(abs)
	if kind == detect.Unknown {
		return nil, fmt.Errorf("project %s at %s: %w", alias, abs, ErrNoProject)
	}
	return &Project{Name: alias, Path: abs, Manager: detect.Manager{Kind: kind, Dir: abs}}, nil
}

func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
