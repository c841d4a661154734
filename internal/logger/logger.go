// Package logger configures the application-wide zerolog logger.
// Request handlers attach a request-scoped logger to the context via
// zerolog's WithContext; everything below the API layer retrieves it
// with FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates the root logger. When json is false, output is the
// human-readable console format (local development); otherwise plain
// JSON lines for log shippers.
func New(level string, json bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if !json {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// FromContext returns the request-scoped logger, or the default context
// logger when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
