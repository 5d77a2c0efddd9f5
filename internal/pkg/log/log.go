package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type logger struct {
	otel *otelzap.Logger
}

var (
	mu      sync.RWMutex
	current *otelzap.Logger
)

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap only fails here on a broken sink, fall back to stderr
		return zap.NewExample()
	}

	return l
}

// Init replaces the process wide logger used by GetLogger and GetOtelLogger.
func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel), otelzap.WithTraceIDField(true))
	otelzap.ReplaceGlobals(current)
}

func GetOtelLogger() *otelzap.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l == nil {
		Init(SetupLogger())
		return GetOtelLogger()
	}
	return l
}

func GetLogger() Logger {
	return &logger{otel: GetOtelLogger()}
}

// Setup builds a standalone logger, mostly for tests.
func Setup() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

// Nop discards everything.
func Nop() Logger {
	return &logger{otel: Setup()}
}

func (l *logger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Debug(msg, fields(args)...)
}

func (l *logger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *logger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.otel.Ctx(ctx).Error(msg, fields(args)...)
}

func fields(args []interface{}) []zapcore.Field {
	out := make([]zapcore.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zapcore.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
