package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New builds the application logger. When file is non-empty, records are
// appended there as JSON; otherwise a text handler writes to stdout.
func New(lvl string, file string, addSource bool) *slog.Logger {

	level := parseLevel(lvl)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			slog.Error("failed to open log file, falling back to stdout",
				slog.String("file", file),
				slog.String("error", err.Error()))
		} else {
			return slog.New(slog.NewJSONHandler(f, opts))
		}
	}

	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(level string) slog.Level {

	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
