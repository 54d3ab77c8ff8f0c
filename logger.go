package hilbert

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hilbert-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDim adds a dimension field to the logger.
func (l *Logger) WithDim(dim uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("dim", dim),
	}
}

// WithSubspace adds a subspace index field to the logger.
func (l *Logger) WithSubspace(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("subspace", index),
	}
}

// LogDecompose logs a decomposition of a full space into subspaces.
func (l *Logger) LogDecompose(ctx context.Context, dim uint64, subspaces, workers int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decompose failed",
			"dim", dim,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decompose completed",
			"dim", dim,
			"subspaces", subspaces,
			"workers", workers,
		)
	}
}

// LogValidate logs a partition consistency check.
func (l *Logger) LogValidate(ctx context.Context, subspaces int, err error) {
	if err != nil {
		l.WarnContext(ctx, "partition invalid",
			"subspaces", subspaces,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "partition valid",
			"subspaces", subspaces,
		)
	}
}
