// Package util provides low-level helpers shared by all other packages.
package util

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing human-readable output to stderr.
// Verbosity maps onto zerolog levels the same way the CLI flags do:
// -1 (quiet) disables output, 0 = info, 1 = debug, ≥2 = trace.
func NewLogger(verbosity int) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		Level(LevelFor(verbosity)).
		With().Timestamp().Logger()
}

// NewLoggerTo is NewLogger with an explicit destination and no console
// formatting. Used by tests that assert on emitted records.
func NewLoggerTo(w io.Writer, verbosity int) zerolog.Logger {
	return zerolog.New(w).
		Level(LevelFor(verbosity)).
		With().Timestamp().Logger()
}

// LevelFor converts a CLI verbosity count into a zerolog level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity < 0:
		return zerolog.Disabled
	case verbosity == 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
