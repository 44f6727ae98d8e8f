// Package logger provides structured logging for the application.
//
// All components receive a *slog.Logger through fx and scope it with
// logger.Scope so log lines can be filtered per subsystem.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

// Module provides the application logger
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
	fx.Provide(NewHTTPLogger),
)

// NewLogger creates the root slog logger.
//
// Level comes from LOG_LEVEL (debug|info|warn|error, default info).
// Output is JSON unless GO_ENV is "local" or "development", where a
// text handler is easier to read.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(os.Getenv("GO_ENV")) {
	case "local", "development", "dev", "":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
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

// Scope returns a scope attribute identifying the logging component
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error returns an error attribute
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
