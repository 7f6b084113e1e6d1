// Package logging builds the charmbracelet loggers used across the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line written by the game.
const Prefix = "lightemall"

// New creates a logger writing to w at the named level
// (debug, info, warn, error). An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

// OpenFile creates a logger appending to the file at path. While the TUI
// owns the terminal this is the only place log output can go. An empty
// path yields a discarding logger and a no-op closer.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		if _, err := New(io.Discard, level); err != nil {
			return nil, nil, err
		}
		return Discard(), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
