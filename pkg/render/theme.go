// Package render holds the color and icon tables psr draws scripts with.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/psr/pkg/script"
)

// Theme selects a color table.
type Theme int

const (
	Dark Theme = iota
	Light
	NoColor
)

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case NoColor:
		return "nocolor"
	default:
		return "dark"
	}
}

// ParseTheme accepts dark, light, nocolor and their common spellings.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark", "default":
		return Dark, nil
	case "light":
		return Light, nil
	case "nocolor", "no-color", "none", "mono":
		return NoColor, nil
	}
	return Dark, fmt.Errorf("unknown theme %q (expected dark, light, nocolor)", name)
}

// bucket is the color family a script type is drawn with.
type bucket int

const (
	bucketDev bucket = iota
	bucketTest
	bucketLint
	bucketFormat
	bucketClean
	bucketBuild
	bucketDeps
	bucketDeploy
	bucketInfra
	bucketOther
)

func bucketOf(t script.ScriptType) bucket {
	switch t {
	case script.Serve, script.Generate, script.Migration:
		return bucketDev
	case script.Test, script.TestE2E:
		return bucketTest
	case script.Lint, script.Typecheck, script.Audit:
		return bucketLint
	case script.Format:
		return bucketFormat
	case script.Clean:
		return bucketClean
	case script.Build, script.BuildDev, script.BuildProd:
		return bucketBuild
	case script.Install, script.Update, script.Lock:
		return bucketDeps
	case script.Version, script.Publish, script.Deploy, script.DeployStaging, script.DeployProd:
		return bucketDeploy
	case script.DockerBuild, script.DockerPush, script.Provision:
		return bucketInfra
	default:
		return bucketOther
	}
}

var darkColors = map[bucket]lipgloss.Color{
	bucketDev:    "#00FF00",
	bucketTest:   "#00FFFF",
	bucketLint:   "#FF8000",
	bucketFormat: "#BF00FF",
	bucketClean:  "#C0C0C0",
	bucketBuild:  "#FFCC00",
	bucketDeps:   "#FF87D7",
	bucketDeploy: "#00BFFF",
	bucketInfra:  "#5F87FF",
	bucketOther:  "#FFFFFF",
}

var lightColors = map[bucket]lipgloss.Color{
	bucketDev:    "#009900",
	bucketTest:   "#0066CC",
	bucketLint:   "#CC3300",
	bucketFormat: "#6600CC",
	bucketClean:  "#404040",
	bucketBuild:  "#CC6600",
	bucketDeps:   "#AF005F",
	bucketDeploy: "#990000",
	bucketInfra:  "#00005F",
	bucketOther:  "#000000",
}

// ColorOf returns the foreground color for a script type under theme.
// NoColor yields lipgloss.NoColor.
func ColorOf(t script.ScriptType, theme Theme) lipgloss.TerminalColor {
	switch theme {
	case Light:
		return lightColors[bucketOf(t)]
	case NoColor:
		return lipgloss.NoColor{}
	default:
		return darkColors[bucketOf(t)]
	}
}

var icons = map[script.ScriptType]string{
	script.Serve:         "▶️",
	script.Generate:      "⚙️",
	script.Migration:     "🗃️",
	script.Test:          "✅",
	script.TestE2E:       "🧪",
	script.Lint:          "🔍",
	script.Typecheck:     "🔍",
	script.Format:        "✨",
	script.Audit:         "🛡️",
	script.Clean:         "🧹",
	script.Build:         "🔨",
	script.BuildDev:      "🔨",
	script.BuildProd:     "🔨",
	script.Install:       "📦",
	script.Update:        "📦",
	script.Lock:          "🔒",
	script.Version:       "🏷️",
	script.Publish:       "🚀",
	script.Deploy:        "🚀",
	script.DeployStaging: "🚀",
	script.DeployProd:    "🚀",
	script.DockerBuild:   "🐳",
	script.DockerPush:    "🐳",
	script.Provision:     "🏗️",
}

// IconOf returns the emoji drawn next to a script of type t.
func IconOf(t script.ScriptType) string {
	if icon, ok := icons[t]; ok {
		return icon
	}
	return "•"
}

// Palette is the set of UI styles derived from a Theme.
type Palette struct {
	Theme    Theme
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabLive  lipgloss.Style
	TabOn    lipgloss.Style
	Cursor   lipgloss.Style
	Muted    lipgloss.Style
	Divider  lipgloss.Style
	Shortcut lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style
}

// PaletteFor builds the UI styles for theme.
func PaletteFor(theme Theme) Palette {
	switch theme {
	case Light:
		return Palette{
			Theme:    theme,
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
			TabLive:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).Padding(0, 1),
			TabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")).Padding(0, 1),
			Cursor:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("254")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Shortcut: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
			Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("160")).Padding(1, 3),
		}
	case NoColor:
		return Palette{
			Theme:    theme,
			Title:    lipgloss.NewStyle().Bold(true),
			Tab:      lipgloss.NewStyle().Padding(0, 1),
			TabLive:  lipgloss.NewStyle().Italic(true).Padding(0, 1),
			TabOn:    lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			Cursor:   lipgloss.NewStyle().Reverse(true),
			Muted:    lipgloss.NewStyle(),
			Divider:  lipgloss.NewStyle(),
			Shortcut: lipgloss.NewStyle().Bold(true),
			Error:    lipgloss.NewStyle().Bold(true),
			Border:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 3),
		}
	default:
		return Palette{
			Theme:    theme,
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			Tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
			TabLive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(0, 1),
			TabOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("39")).Padding(0, 1),
			Cursor:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Shortcut: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Padding(1, 3),
		}
	}
}

// ScriptStyle is the foreground style for a script name of type t.
func (p Palette) ScriptStyle(t script.ScriptType) lipgloss.Style {
	if p.Theme == NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(ColorOf(t, p.Theme))
}
