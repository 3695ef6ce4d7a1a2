// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/PanDora7855/task-manager-backend/internal/config"
)

// contextKey is the type used for logger context keys.
type contextKey struct{}

// loggerKey stores the request-scoped logger in a context.
var loggerKey = contextKey{}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// It accepts a ServerConfig containing the log level setting and returns the
// configured logger.
func Setup(cfg config.ServerConfig) *slog.Logger {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level as default and log a warning
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// JSON handler writing to stdout with the configured options
	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set this logger as the default for the application so the slog
	// package functions (slog.Info, slog.Error, etc.) use it directly.
	slog.SetDefault(logger)

	return logger
}

// WithContext returns a copy of ctx carrying the given logger. Middleware
// uses this to hand request-scoped loggers (e.g. with a trace ID attached)
// down to handlers.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContextOrDefault returns the request-scoped logger from the context
// if one was set, otherwise the provided fallback. A nil fallback yields
// the process default logger, so callers never receive nil.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
