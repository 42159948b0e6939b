// Package logging builds the slog loggers used by the frontend.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// options is what a LOG_LEVEL string resolves to.
type options struct {
	level      slog.Level
	withSource bool
}

// parseLevel accepts trace|debug|info|warn|warning|error, case-insensitively.
// trace is debug plus call sites. Unknown values fall back to info.
func parseLevel(level string) options {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return options{level: slog.LevelDebug, withSource: true}
	case "debug":
		return options{level: slog.LevelDebug}
	case "warn", "warning":
		return options{level: slog.LevelWarn}
	case "error":
		return options{level: slog.LevelError}
	default:
		return options{level: slog.LevelInfo}
	}
}

// NewTextHandler returns a human readable handler backed by charmbracelet/log.
func NewTextHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	opts := parseLevel(level)

	// charmbracelet levels share slog's numeric values
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    opts.withSource,
		Level:           log.Level(opts.level),
	})
}

// NewJSONHandler returns a JSON handler for log shippers.
func NewJSONHandler(level string, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stdout
	}
	opts := parseLevel(level)

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     opts.level,
		AddSource: opts.withSource,
	})
}

// New picks a handler by format ("json" or anything else for text) and
// returns a logger tagged with the service name.
func New(level, format string, w io.Writer) *slog.Logger {
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = NewJSONHandler(level, w)
	} else {
		h = NewTextHandler(level, w)
	}
	return slog.New(h).With("service", "frontend")
}
