package parsekit

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/parsekit/vector"
)

// Logger wraps slog.Logger with parsekit-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds a source field, typically the input file being processed.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogSort logs the outcome of a topological sort.
func (l *Logger) LogSort(ctx context.Context, nodes, edges int, err error) {
	if err != nil {
		l.WarnContext(ctx, "sort failed",
			"nodes", nodes,
			"edges", edges,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sort completed",
			"nodes", nodes,
			"edges", edges,
		)
	}
}

// LogFactoryClose logs the final counters of a vector factory.
func (l *Logger) LogFactoryClose(ctx context.Context, stats vector.FactoryStats) {
	l.DebugContext(ctx, "vector factory closed",
		"pools", stats.Pools,
		"carved", stats.Carved,
		"reused", stats.Reused,
		"returned", stats.Returned,
	)
}
