// Package logging builds the loggers the CLI uses. The core library
// never logs.
package logging

import (
	"log/slog"
	"os"
)

// New creates a configured application logger. It writes to stderr so
// automaton output on stdout stays machine-readable.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
