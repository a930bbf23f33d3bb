package detect

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dkoosis/psr/pkg/script"
)

type pyproject struct {
	Project struct {
		Dependencies []string            `toml:"dependencies"`
		Optional     map[string][]string `toml:"optional-dependencies"`
		Scripts      map[string]string   `toml:"scripts"`
	} `toml:"project"`
	BuildSystem struct {
		Requires []string `toml:"requires"`
	} `toml:"build-system"`
	Tool struct {
		Poetry *struct {
			Dependencies    map[string]any    `toml:"dependencies"`
			DevDependencies map[string]any    `toml:"dev-dependencies"`
			Scripts         map[string]string `toml:"scripts"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
		Uv *struct {
			DevDependencies []string `toml:"dev-dependencies"`
		} `toml:"uv"`
	} `toml:"tool"`
}

type uvConfig struct {
	Dependencies map[string]any `toml:"dependencies"`
}

func readPyproject(dir string) (*pyproject, error) {
	var doc pyproject
	if _, err := toml.DecodeFile(filepath.Join(dir, "pyproject.toml"), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func sniffPython(dir string) Kind {
	if exists(dir, "pyproject.toml") {
		if doc, err := readPyproject(dir); err == nil {
			if doc.Tool.Poetry != nil {
				return Poetry
			}
			if doc.Tool.Uv != nil {
				return Uv
			}
			for _, req := range doc.BuildSystem.Requires {
				if strings.Contains(req, "uv") {
					return Uv
				}
			}
		}
	}
	switch {
	case exists(dir, "poetry.lock"):
		return Poetry
	case exists(dir, ".uv"), exists(dir, "uv.toml"), exists(dir, "uv.lock"):
		return Uv
	case exists(dir, "requirements.txt"):
		return Pip
	}
	return Unknown
}

func pythonScripts(kind Kind, dir string) ([]script.Script, error) {
	deps, entry, err := pythonDeps(kind, dir)
	if err != nil {
		return nil, err
	}

	prefix := ""
	switch kind {
	case Poetry:
		prefix = "poetry run "
	case Uv:
		prefix = "uv run "
	}

	var scripts []script.Script
	switch kind {
	case Poetry:
		scripts = append(scripts, builtin("install", "poetry install", "Install project dependencies", script.Install, 'i'))
	case Uv:
		scripts = append(scripts, builtin("install", "uv sync", "Sync project dependencies", script.Install, 'i'))
	case Pip:
		scripts = append(scripts, builtin("install", "pip install -r requirements.txt", "Install requirements", script.Install, 'i'))
	}

	switch {
	case deps["ruff"]:
		scripts = append(scripts,
			builtin("lint", prefix+"ruff check .", "Run Ruff linter", script.Lint, 'l'),
			builtin("format", prefix+"ruff format .", "Format with Ruff", script.Format, 'f'))
	case deps["flake8"]:
		scripts = append(scripts, builtin("lint", prefix+"flake8", "Run Flake8 linter", script.Lint, 'l'))
	case deps["pylint"]:
		scripts = append(scripts, builtin("lint", prefix+"pylint **/*.py", "Run Pylint linter", script.Lint, 'l'))
	}
	if deps["black"] && !deps["ruff"] {
		scripts = append(scripts, builtin("format", prefix+"black .", "Format with Black", script.Format, 'f'))
	}
	if deps["mypy"] {
		scripts = append(scripts, builtin("typecheck", prefix+"mypy .", "Run mypy", script.Typecheck, 'c'))
	}
	if deps["pytest"] {
		scripts = append(scripts, builtin("test", prefix+"pytest", "Run pytest", script.Test, 't'))
	}

	names := make([]string, 0, len(entry))
	for name := range entry {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		scripts = append(scripts, script.New(name, prefix+name,
			script.WithDescription("Entry point "+entry[name])))
	}
	return scripts, nil
}

// pythonDeps returns the declared dependency names and console entry points.
func pythonDeps(kind Kind, dir string) (map[string]bool, map[string]string, error) {
	deps := map[string]bool{}
	entry := map[string]string{}

	if exists(dir, "pyproject.toml") {
		doc, err := readPyproject(dir)
		if err != nil {
			return nil, nil, err
		}
		for _, req := range doc.Project.Dependencies {
			deps[requirementName(req)] = true
		}
		for _, group := range doc.Project.Optional {
			for _, req := range group {
				deps[requirementName(req)] = true
			}
		}
		for name, target := range doc.Project.Scripts {
			entry[name] = target
		}
		if p := doc.Tool.Poetry; p != nil {
			for name := range p.Dependencies {
				deps[strings.ToLower(name)] = true
			}
			for name := range p.DevDependencies {
				deps[strings.ToLower(name)] = true
			}
			for _, g := range p.Group {
				for name := range g.Dependencies {
					deps[strings.ToLower(name)] = true
				}
			}
			for name, target := range p.Scripts {
				entry[name] = target
			}
		}
		if u := doc.Tool.Uv; u != nil {
			for _, req := range u.DevDependencies {
				deps[requirementName(req)] = true
			}
		}
	}

	if kind == Uv && exists(dir, "uv.toml") {
		var cfg uvConfig
		if _, err := toml.DecodeFile(filepath.Join(dir, "uv.toml"), &cfg); err != nil {
			return nil, nil, err
		}
		for name := range cfg.Dependencies {
			deps[strings.ToLower(name)] = true
		}
	}

	if exists(dir, "requirements.txt") {
		f, err := os.Open(filepath.Join(dir, "requirements.txt"))
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
				continue
			}
			deps[requirementName(line)] = true
		}
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
	}
	return deps, entry, nil
}

// requirementName strips version specifiers and extras from a PEP 508 string.
func requirementName(req string) string {
	req = strings.TrimSpace(req)
	if i := strings.IndexAny(req, " <>=!~;[("); i >= 0 {
		req = req[:i]
	}
	return strings.ToLower(req)
}
