package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up locally and under the user config dir.
const FileName = ".psr.yaml"

var (
	// ErrProjectExists is returned when adding an alias that is already saved.
	ErrProjectExists = errors.New("project already exists")
	// ErrProjectNotFound is returned when an alias is not saved.
	ErrProjectNotFound = errors.New("project not found")
)

// SavedProject is a project alias persisted in the config file.
type SavedProject struct {
	Name string `mapstructure:"name" yaml:"name"`
	Path string `mapstructure:"path" yaml:"path"`
}

// Settings is the persisted configuration.
type Settings struct {
	Theme     string         `mapstructure:"theme" yaml:"theme"`
	ShowEmoji bool           `mapstructure:"show_emoji" yaml:"show_emoji"`
	Projects  []SavedProject `mapstructure:"projects" yaml:"projects,omitempty"`

	path string
}

// Defaults returns settings with hardcoded defaults.
func Defaults() *Settings {
	return &Settings{Theme: "dark", ShowEmoji: true}
}

// Path returns the config file path: PSR_CONFIG, then a local .psr.yaml,
// then the user config dir. The returned file may not exist yet.
func Path() string {
	if p := environment().GetString("config"); p != "" {
		return p
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return FileName
	}
	return filepath.Join(configHome, "psr", FileName)
}

// Load reads settings from Path.
func Load(logger *slog.Logger) (*Settings, error) {
	return LoadFrom(Path(), logger)
}

// LoadFrom reads settings from path. A missing file yields defaults bound to
// path so a later Save creates it.
func LoadFrom(path string, logger *slog.Logger) (*Settings, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	defaults := Defaults()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("show_emoji", defaults.ShowEmoji)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		logger.Debug("loaded config", "path", path)
	} else {
		logger.Debug("no config file, using defaults", "path", path)
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// File is the path Save writes to.
func (s *Settings) File() string { return s.path }

// Save writes the settings back to the file they were loaded from.
func (s *Settings) Save() error {
	if s.path == "" {
		s.path = Path()
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", s.path, err)
	}
	return nil
}

// ProjectPath returns the saved path for alias.
func (s *Settings) ProjectPath(alias string) (string, bool) {
	if i := s.indexOf(alias); i >= 0 {
		return s.Projects[i].Path, true
	}
	return "", false
}

// AddProject saves alias → path. The path is stored absolute.
func (s *Settings) AddProject(alias, path string) error {
	if s.indexOf(alias) >= 0 {
		return fmt.Errorf("project '%s': %w", alias, ErrProjectExists)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	s.Projects = append(s.Projects, SavedProject{Name: alias, Path: abs})
	return nil
}

// RemoveProject deletes alias.
func (s *Settings) RemoveProject(alias string) error {
	i := s.indexOf(alias)
	if i < 0 {
		return fmt.Errorf("project '%s': %w", alias, ErrProjectNotFound)
	}
	s.Projects = append(s.Projects[:i], s.Projects[i+1:]...)
	return nil
}

// RenameProject changes an alias, keeping its position and path.
func (s *Settings) RenameProject(oldAlias, newAlias string) error {
	i := s.indexOf(oldAlias)
	if i < 0 {
		return fmt.Errorf("project '%s': %w", oldAlias, ErrProjectNotFound)
	}
	if s.indexOf(newAlias) >= 0 {
		return fmt.Errorf("project '%s': %w", newAlias, ErrProjectExists)
	}
	s.Projects[i].Name = newAlias
	return nil
}

func (s *Settings) indexOf(alias string) int {
	for i, p := range s.Projects {
		if p.Name == alias {
			return i
		}
	}
	return -1
}
