package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a logger writing to w. Verbose enables debug records;
// otherwise only warnings and errors are emitted.
func NewLogger(verbose bool, format string, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
