package gen

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with generator-specific helpers.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithType adds a type field to the logger.
func (l *Logger) WithType(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", name),
	}
}

// LogRender logs the rendering of one definition.
func (l *Logger) LogRender(ctx context.Context, def Definition, variants int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "render failed",
			"type", def.Type,
			"repr", def.Repr,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "render completed",
		"type", def.Type,
		"repr", def.Repr,
		"min", def.Min,
		"max", def.Max,
		"variants", variants,
	)
}

// LogWrite logs a generated file being written.
func (l *Logger) LogWrite(ctx context.Context, path string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"path", path,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "wrote file",
		"path", path,
		"bytes", size,
	)
}

// LogGenerate logs the outcome of a whole generation run.
func (l *Logger) LogGenerate(ctx context.Context, total, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "generation completed with failures",
			"total", total,
			"failed", failed,
		)
		return
	}
	l.InfoContext(ctx, "generation completed",
		"count", total,
	)
}
