package logging

import (
	"log/slog"
	"os"
	"strings"
)

//go:generate mockgen -source=stdout_logger.go -destination=../../../gen/mocks/logging/logger.go -package=mocks

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// NewStdoutLogger returns a text logger writing records at or above level
// ("debug", "info", "warn", "error"); unknown levels fall back to info.
func NewStdoutLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
