// Package log provides structured logging for the sentiment pipeline.
//
// The package defines a minimal, slog-compatible logging interface with
// key-value structured fields, plus standard attribute keys for ML
// operations (model names, data shapes, metrics). The default
// implementation emits JSON via log/slog and extracts cockroachdb/errors
// stack traces into a dedicated attribute.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("boosting.trainer")
//	logger.Info("training started",
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 65536,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with log/slog.
// Fields are alternating key-value pairs, as in slog.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If a field value is an error carrying a cockroachdb stack trace, the
	// trace is attached under the stacktrace attribute.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It exists for dependency
// injection and for swapping in test implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}
