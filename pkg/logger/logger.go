package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

var Log = zap.NewNop()

// Init builds the process logger. Production uses the JSON encoder,
// anything else the human-readable development config.
func Init(environment string) {
	var (
		l   *zap.Logger
		err error
	)
	if environment == ProductionEnvironment {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return
	}
	Log = l
}

type ctxKey struct{}

// Get returns the request-scoped logger if one was attached, else Log.
func Get(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(ctxKey{}).(*zap.Logger); l != nil {
			return l
		}
	}
	return Log
}

func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithFields attaches a child logger carrying fields to ctx.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = Log.Sync()
}
