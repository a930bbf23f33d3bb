// Package script models the runnable tasks a project exposes and the
// heuristics psr uses to classify, group and resolve them.
package script

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested script matches neither an exact
// name nor a synonym group.
var ErrNotFound = errors.New("script not found")

// Script is one discovered task. Values are immutable once constructed.
type Script struct {
	Name        string
	Command     string
	Description string
	Shortcut    rune
	Type        ScriptType
}

// Option configures a Script built by New.
type Option func(*Script, *bool)

// WithDescription sets the script description.
func WithDescription(desc string) Option {
	return func(s *Script, _ *bool) { s.Description = desc }
}

// WithShortcut binds a single-key shortcut.
func WithShortcut(r rune) Option {
	return func(s *Script, _ *bool) { s.Shortcut = r }
}

// WithType pre-assigns the classification and skips the heuristic.
func WithType(t ScriptType) Option {
	return func(s *Script, typed *bool) {
		s.Type = t
		*typed = true
	}
}

// New builds a Script, classifying it from name and command unless a type
// was supplied with WithType.
func New(name, command string, opts ...Option) Script {
	s := Script{Name: name, Command: command}
	typed := false
	for _, opt := range opts {
		opt(&s, &typed)
	}
	if !typed {
		s.Type = Classify(name, command)
	}
	return s
}

// Phase returns the coarse bucket of the script's type.
func (s Script) Phase() Phase { return PhaseOf(s.Type) }

// HasShortcut reports whether a shortcut key is bound.
func (s Script) HasShortcut() bool { return s.Shortcut != 0 }

// MatchesSearch reports whether query is a case-insensitive substring of the
// script's name, command or description. An empty query matches everything.
func (s Script) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Command), q) ||
		(s.Description != "" && strings.Contains(strings.ToLower(s.Description), q))
}

// Find returns the last script named name.
func Find(scripts []Script, name string) (Script, bool) {
	for i := len(scripts) - 1; i >= 0; i-- {
		if scripts[i].Name == name {
			return scripts[i], true
		}
	}
	return Script{}, false
}
