package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"nikgen/internal/platform/config"
)

// New returns a structured logger writing to stderr with the configured level
// and format ("json" or "text"). Without a level it returns Discard, so a host
// program's output stays its own unless logging is asked for.
func New(cfg config.Logging) *slog.Logger {
	if strings.TrimSpace(cfg.Level) == "" {
		return Discard()
	}
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg config.Logging) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops everything. Components use it when no
// logger is injected.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
