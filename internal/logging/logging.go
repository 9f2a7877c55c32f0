// Package logging builds the slog handlers used by the knapsack CLI.
// Library packages never log; only cmd/knapsack does.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Format names an output encoding for log records.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewJSONHandler creates a JSON log handler with the specified output and level.
// JSON is meant for machine consumption (batch runs, CI).
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// NewTextHandler creates a key=value log handler with the specified output and level.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewHandler selects the handler for format ("text" or "json").
func NewHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextHandler(w, level), nil
	case FormatJSON:
		return NewJSONHandler(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", s, err)
	}

	return l, nil
}

// New returns a logger tagged with a fresh run_id, so that every record of
// one CLI invocation can be correlated.
func New(w io.Writer, format string, level slog.Level) (*slog.Logger, string, error) {
	h, err := NewHandler(w, format, level)
	if err != nil {
		return nil, "", err
	}
	runID := uuid.NewString()

	return slog.New(h).With(slog.String("run_id", runID)), runID, nil
}
