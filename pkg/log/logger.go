package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// SetupLogger configures the process-wide slog default: a JSON handler with
// severity/message key remapping and stack trace extraction for errors.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     slog.Level(ToLogLevel(loglevel)),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{Key: "severity", Value: attr.Value}
			case slog.MessageKey:
				attr = slog.Attr{Key: "message", Value: attr.Value}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a Level.
func ToLogLevel(level string) Level {
	switch level {
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.l.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.l.Warn(msg, fields...) }
func (s *slogLogger) Error(msg string, fields ...any) { s.l.Error(msg, fields...) }

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.l.Enabled(ctx, slog.Level(level))
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = &slogProvider{}
)

// slogProvider is the default LoggerProvider backed by the slog default.
type slogProvider struct {
	mu    sync.RWMutex
	level *slog.LevelVar
}

func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{l: slog.Default()}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{l: slog.Default().With(ComponentKey, name)}
}

func (p *slogProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.level == nil {
		p.level = new(slog.LevelVar)
	}
	p.level.Set(slog.Level(level))
}

// SetLoggerProvider replaces the package-level provider, e.g. with a
// TestLoggerProvider in tests.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// GetLogger returns the default logger.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name, e.g.
// "boosting.trainer" or "pipeline.model".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}
