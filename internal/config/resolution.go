package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/dkoosis/psr/pkg/render"
)

// envPrefix namespaces psr's environment keys: theme reads PSR_THEME.
const envPrefix = "PSR"

// environment is the PSR_* layer. It is kept apart from the file settings so
// Save never writes an environment override back to disk.
func environment() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// Flags holds CLI values that override the config file.
type Flags struct {
	Theme string
}

// Resolved is the effective configuration after applying precedence.
type Resolved struct {
	Theme     render.Theme
	ShowEmoji bool

	// ThemeSource is "cli", "env", "file" or "default".
	ThemeSource string
}

// Resolve applies CLI > environment > file > defaults.
func (s *Settings) Resolve(flags Flags) (Resolved, error) {
	r := Resolved{Theme: render.Dark, ThemeSource: "default", ShowEmoji: s.ShowEmoji}
	env := environment()

	switch {
	case flags.Theme != "":
		theme, err := render.ParseTheme(flags.Theme)
		if err != nil {
			return Resolved{}, err
		}
		r.Theme, r.ThemeSource = theme, "cli"
	case os.Getenv("NO_COLOR") != "":
		r.Theme, r.ThemeSource = render.NoColor, "env"
	case env.GetString("theme") != "":
		theme, err := render.ParseTheme(env.GetString("theme"))
		if err != nil {
			return Resolved{}, fmt.Errorf("PSR_THEME: %w", err)
		}
		r.Theme, r.ThemeSource = theme, "env"
	case s.Theme != "":
		theme, err := render.ParseTheme(s.Theme)
		if err != nil {
			return Resolved{}, fmt.Errorf("config %s: %w", s.path, err)
		}
		r.Theme, r.ThemeSource = theme, "file"
	}

	if v, ok := envBool(env, "show_emoji"); ok {
		r.ShowEmoji = v
	}
	return r, nil
}

// envBool reads a boolean key, ignoring unset or unparsable values.
func envBool(env *viper.Viper, key string) (bool, bool) {
	raw := env.GetString(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
