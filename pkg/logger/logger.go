// Package logger provides the application's structured logging setup.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewZapLogger,
	),
)

// NewLogger creates the application slog logger. Level comes from LOG_LEVEL;
// GO_ENV=development switches to a human-readable text handler.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "development" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// NewZapLogger creates the zap logger used by the migrator.
func NewZapLogger() (*zap.Logger, error) {
	if os.Getenv("GO_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Scope returns a scope attribute identifying the component doing the logging.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error returns an error attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
