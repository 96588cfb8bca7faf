package docsift

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with docsift-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithType adds the queried schema type to the logger.
func (l *Logger) WithType(typeName string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", typeName),
	}
}

// WithPath adds a field path to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogQuery logs a query execution.
func (l *Logger) LogQuery(ctx context.Context, typeName string, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"type", typeName,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "query completed",
			"type", typeName,
			"matched", matched,
		)
	}
}

// LogIndexRequest logs an index-creation request.
func (l *Logger) LogIndexRequest(ctx context.Context, collection, path string) {
	l.DebugContext(ctx, "index requested",
		"collection", collection,
		"path", path,
	)
}

// LogInvalidation logs a usage-table reset.
func (l *Logger) LogInvalidation(ctx context.Context) {
	l.InfoContext(ctx, "usage counters cleared")
}
