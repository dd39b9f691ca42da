package fetch

import (
	"io"
	"log/slog"
	"os"
)

// DefaultLogger returns a logger for typical use.
// It logs to stderr with text format at Info level.
func DefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// DebugLogger returns a logger configured for debugging.
// It logs to stderr with text format at Debug level, including source location.
func DebugLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}

// JSONLogger returns a logger that writes JSON records to w.
// A nil w means stderr.
func JSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NopLogger returns a logger that discards everything.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
