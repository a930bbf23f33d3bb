package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// State is the terminal ownership state of a Session.
type State int

const (
	// Suspended means the terminal is in the caller's normal mode and may be
	// handed to a child process.
	Suspended State = iota
	// Presenting means a bubbletea program owns the terminal in raw mode on
	// the alternate screen.
	Presenting
)

// Session owns the terminal for the lifetime of the TUI. Acquire records
// the caller's terminal mode and Release puts it back; Release is safe to
// call more than once.
type Session struct {
	in      *os.File
	out     *os.File
	state   State
	saved   *term.State
	options []tea.ProgramOption
	logger  *slog.Logger
}

// NewSession creates a session on the given terminal files. Extra program
// options are applied to every Present call.
func NewSession(in, out *os.File, logger *slog.Logger, options ...tea.ProgramOption) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{in: in, out: out, options: options, logger: logger}
}

// State reports the current ownership state.
func (s *Session) State() State { return s.state }

// Acquire records the caller's terminal mode.
func (s *Session) Acquire() error {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	st, err := term.GetState(fd)
	if err != nil {
		return fmt.Errorf("reading terminal state: %w", err)
	}
	s.saved = st
	return nil
}

// Release restores the mode recorded by Acquire.
func (s *Session) Release() error {
	s.state = Suspended
	if s.saved == nil {
		return nil
	}
	st := s.saved
	s.saved = nil
	if err := term.Restore(int(s.in.Fd()), st); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// Present runs m on the alternate screen until it quits, then hands the
// terminal back in the caller's mode.
func (s *Session) Present(m tea.Model) (tea.Model, error) {
	s.state = Presenting
	defer func() { s.state = Suspended }()

	opts := append([]tea.ProgramOption{
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithAltScreen(),
	}, s.options...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		s.logger.Debug("program failed, restoring terminal", "err", err)
		if rerr := s.restoreSaved(); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return nil, fmt.Errorf("running tui: %w", err)
	}
	return final, nil
}

// PromptKey prints msg and blocks for a single key press in raw mode.
// End of input reads as 'q'.
func (s *Session) PromptKey(msg string) (rune, error) {
	fmt.Fprintf(s.out, "\n%s", msg)
	defer fmt.Fprintln(s.out)

	fd := int(s.in.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return 0, fmt.Errorf("entering raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, old) }()
	}
	return readKey(s.in)
}

// restoreSaved puts back the recorded mode without forgetting it, so a later
// Release still works.
func (s *Session) restoreSaved() error {
	if s.saved == nil {
		return nil
	}
	return term.Restore(int(s.in.Fd()), s.saved)
}

// readKey reads one key press. Ctrl+C and end of input count as 'q'.
func readKey(r io.Reader) (rune, error) {
	buf := make([]byte, utf8.UTFMax)
	n, err := r.Read(buf)
	if errors.Is(err, io.EOF) || (err == nil && n == 0) {
		return 'q', nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading key: %w", err)
	}
	if buf[0] == 3 {
		return 'q', nil
	}
	key, _ := utf8.DecodeRune(buf[:n])
	return key, nil
}
