// Package logging builds the process logger: a log/slog handler exposed
// through the logr API used by the rest of cytraco.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-logr/logr"
)

// Options selects the log level, encoding and destination.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string

	// Format is text or json. Empty means text.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logr.Logger backed by a slog handler.
//
// logr verbosity maps onto slog levels, so V(1) messages appear only at
// the debug level.
func New(opts Options) (logr.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handler = slog.NewTextHandler(out, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		return logr.Discard(), fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}

	return logr.FromSlogHandler(handler), nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}
