package checked

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with checked-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogParse logs a numeric parse operation.
func (l *Logger) LogParse(ctx context.Context, text string, category string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parse failed",
			"text", text,
			"category", category,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parse completed",
			"text", text,
			"category", category,
		)
	}
}

// LogRead logs a delimited read operation.
func (l *Logger) LogRead(ctx context.Context, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"bytes", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"bytes", n,
		)
	}
}

// LogFind logs a table scan operation.
func (l *Logger) LogFind(ctx context.Context, count int, found bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "find failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "find completed",
			"count", count,
			"found", found,
		)
	}
}
