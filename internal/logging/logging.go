// Package logging builds the slog logger shared by psr components.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options selects where debug output goes.
type Options struct {
	// Verbose enables debug logging on the fallback writer.
	Verbose bool
	// File, when set, receives logs instead of the fallback writer so the
	// TUI is not drawn over.
	File string
}

// FromEnv fills unset options from PSR_DEBUG and PSR_LOG_FILE.
func (o Options) FromEnv() Options {
	if os.Getenv("PSR_DEBUG") != "" {
		o.Verbose = true
	}
	if o.File == "" {
		o.File = os.Getenv("PSR_LOG_FILE")
	}
	return o
}

// New returns a logger and a close func. Without Verbose or File the logger
// discards everything.
func New(fallback io.Writer, opts Options) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, err
		}
		return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f.Close, nil
	}
	if !opts.Verbose {
		return slog.New(slog.DiscardHandler), noop, nil
	}
	return slog.New(slog.NewTextHandler(fallback, &slog.HandlerOptions{Level: slog.LevelDebug})), noop, nil
}
