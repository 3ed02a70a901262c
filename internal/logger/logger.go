// Package logger provides leveled logging for the conversion pipeline.
//
// The converter configures one Logger at process start from the --verbosity
// flag and hands it to the components that do real work, so there is no
// process-global logging state.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog with the converter's verbosity levels.
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
}

// New creates a logger writing to w at the given verbosity.
// Recognized verbosity values: "quiet", "info", "debug".
// Unknown values fall back to "info". "quiet" suppresses everything
// below error level.
func New(w io.Writer, verbosity string) *Logger {
	lvl := new(slog.LevelVar)

	switch strings.ToLower(verbosity) {
	case "quiet":
		lvl.Set(slog.LevelError)
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "info":
		lvl.Set(slog.LevelInfo)
	default:
		lvl.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	handler := slog.NewTextHandler(w, opts)

	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
	}
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
	}
}

// DebugEnabled reports whether messages at debug level would be emitted.
// Components use this to skip expensive per-entry diagnostics.
func (l *Logger) DebugEnabled() bool {
	return l.level.Level() <= slog.LevelDebug
}
