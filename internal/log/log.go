// Package log builds the zap loggers used by the commands.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Adjust returns logger, or a no-op logger when it is nil.
func Adjust(logger *zap.Logger) *zap.Logger {
	if logger != nil {
		return logger
	}
	return zap.NewNop()
}

// NewFileLogger returns a JSON logger appending to path at the given level
// ("debug", "info", "warn", "error"). The terminal is left untouched.
func NewFileLogger(path, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	cfg.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	l, err := cfg.Build(zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("log: build logger: %w", err)
	}
	return l, nil
}
