package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel maps "debug", "info" or "error" to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger is the logging surface used across services and controllers.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of zap.
type DefaultLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger builds a production zap logger gated at level.
func NewDefaultLogger(level Level) *DefaultLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewExample()
	}
	return &DefaultLogger{sugar: base.Sugar()}
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(l *zap.Logger) *DefaultLogger {
	return &DefaultLogger{sugar: l.Sugar()}
}

// NewNop discards everything.
func NewNop() *DefaultLogger {
	return NewFromZap(zap.NewNop())
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Sync flushes buffered entries.
func (l *DefaultLogger) Sync() error {
	return l.sugar.Sync()
}
