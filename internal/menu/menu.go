// Package menu implements the line-oriented picker used when psr runs
// without the TUI: shortcut scripts and up to nine numbered scripts, chosen
// with a single key press.
package menu

import (
	"fmt"
	"io"

	"github.com/dkoosis/psr/pkg/script"
)

// Prompt is printed before waiting for a key.
const Prompt = "Press a key to select a command, or 'q' to quit> "

// maxNumbered is how many scripts without a shortcut get a digit key.
const maxNumbered = 9

// Kind is the outcome of a menu.
type Kind int

const (
	Quit Kind = iota
	RunScript
	SwitchToTUI
)

// Choice is what the user picked.
type Choice struct {
	Kind   Kind
	Script script.Script
}

// KeyReader prints a prompt and reads one key press.
type KeyReader interface {
	PromptKey(msg string) (rune, error)
}

// Menu is a rendered list of scripts with the keys that select them.
type Menu struct {
	scripts  []script.Script
	numbered []script.Script
	extra    []script.Script
}

// New partitions scripts into shortcut entries, numbered entries, and the
// overflow that only the TUI can reach.
func New(scripts []script.Script) *Menu {
	m := &Menu{scripts: scripts}
	for _, s := range scripts {
		if s.HasShortcut() {
			continue
		}
		if len(m.numbered) < maxNumbered {
			m.numbered = append(m.numbered, s)
		} else {
			m.extra = append(m.extra, s)
		}
	}
	return m
}

// Render writes the menu for the project in dir.
func (m *Menu) Render(w io.Writer, dir string) {
	fmt.Fprintf(w, "Working directory: %s\n", dir)
	fmt.Fprintln(w, "Available scripts (press key to select):")
	for _, s := range m.scripts {
		if s.HasShortcut() {
			fmt.Fprintf(w, "[%c] %s (%s)\n", s.Shortcut, s.Name, s.Command)
		}
	}
	if len(m.numbered) > 0 {
		fmt.Fprintln(w, "---")
	}
	for i, s := range m.numbered {
		fmt.Fprintf(w, "[%d] %s (%s)\n", i+1, s.Name, s.Command)
	}
	if len(m.extra) > 0 {
		fmt.Fprintln(w, "\nAdditional scripts (requires TUI mode):")
		for _, s := range m.extra {
			fmt.Fprintf(w, "    %s (%s)\n", s.Name, s.Command)
		}
	}
	if len(m.numbered) > 0 {
		fmt.Fprintln(w, "---")
	}
	fmt.Fprintln(w, "[t] Switch to TUI mode")
}

// Pick maps a key press to a choice. Keys that select nothing quit.
func (m *Menu) Pick(key rune) Choice {
	switch key {
	case 't':
		return Choice{Kind: SwitchToTUI}
	case 'q', 0x1b:
		return Choice{Kind: Quit}
	}
	for _, s := range m.scripts {
		if s.HasShortcut() && s.Shortcut == key {
			return Choice{Kind: RunScript, Script: s}
		}
	}
	if key >= '1' && key <= '9' {
		if i := int(key - '1'); i < len(m.numbered) {
			return Choice{Kind: RunScript, Script: m.numbered[i]}
		}
	}
	return Choice{Kind: Quit}
}

// Run renders the menu to w and reads the user's choice from keys.
func Run(w io.Writer, keys KeyReader, dir string, scripts []script.Script) (Choice, error) {
	m := New(scripts)
	m.Render(w, dir)
	key, err := keys.PromptKey(Prompt)
	if err != nil {
		return Choice{}, err
	}
	return m.Pick(key), nil
}
