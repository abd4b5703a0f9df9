package common

import (
	"context"
	"log/slog"
	"os"
)

// Fields carries structured logging attributes.
type Fields map[string]any

func (f Fields) attrs() []slog.Attr {
	out := make([]slog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, slog.Any(k, v))
	}
	return out
}

// SetupLogger installs the process-wide logger. Format is "json" or "text";
// anything else falls back to text.
func SetupLogger(level slog.Level, format string) error {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// LogError logs an error with its fields.
func LogError(err error, msg string, fields Fields) {
	attrs := append([]slog.Attr{slog.String("error", err.Error())}, fields.attrs()...)
	slog.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// LogInfo logs an info message with fields.
func LogInfo(msg string, fields Fields) {
	slog.LogAttrs(context.Background(), slog.LevelInfo, msg, fields.attrs()...)
}

// LogDebug logs a debug message with fields.
func LogDebug(msg string, fields Fields) {
	slog.LogAttrs(context.Background(), slog.LevelDebug, msg, fields.attrs()...)
}
