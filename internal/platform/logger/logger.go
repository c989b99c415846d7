package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured stdout logger. format is "json" or "text".
func New(format string, level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, format, level)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
