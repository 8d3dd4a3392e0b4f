package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

var instance atomic.Pointer[zap.Logger]

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	instance.Store(log)
}

// SetLevel changes the minimum level of the shared logger ("debug", "info", ...).
func SetLevel(l string) error {
	return level.UnmarshalText([]byte(l))
}

// Replace swaps the shared logger and returns a func restoring the previous one.
// Safe to call while other goroutines are logging.
func Replace(l *zap.Logger) func() {
	prev := instance.Swap(l)
	return func() { instance.Store(prev) }
}

func Sync() {
	_ = instance.Load().Sync()
}

func Fatal(msg string, err error, fields ...zap.Field) {
	instance.Load().Fatal(msg, append(fields, zap.Error(err))...)
}

func Error(msg string, err error, fields ...zap.Field) {
	instance.Load().Error(msg, append(fields, zap.Error(err))...)
}

func Info(msg string, fields ...zap.Field) {
	instance.Load().Info(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	instance.Load().Debug(msg, fields...)
}
