// Package logging builds the zerolog logger shared by both bridges.
//
// Logs always go to stderr because stdout carries the MCP stdio stream. When a
// log file is configured every event is duplicated into it.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr (and logFile, when non-empty) at the
// given level. The returned closer releases the log file; it is never nil.
func New(level, logFile, component string) (zerolog.Logger, io.Closer, error) {
	return newLogger(os.Stderr, level, logFile, component)
}

func newLogger(stderr io.Writer, level, logFile, component string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q", level)
	}

	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(stderr, f)
		closer = f
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("component", component).
		Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
