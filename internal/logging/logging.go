// Package logging builds the application logger. The TUI owns the
// terminal, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix tags every line written by kuku.
const Prefix = "kuku"

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// Open builds the logger for one run. An empty path discards output.
// The returned closer must be called on exit. Each run gets a random ID
// so interleaved runs in one file can be told apart.
func Open(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return New(f, level).With("run", uuid.NewString()), f, nil
}
