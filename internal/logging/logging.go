// Package logging sets up the file-backed app log. The core surfaces
// errors to the CLI layer; this log only records command lifecycle
// events for the logs command to show.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Open returns a logger appending to the log file at path. The caller
// closes the returned file handle when done.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
	return logger, f, nil
}

// Discard returns a logger that drops everything, for commands running
// before the data directory exists.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
