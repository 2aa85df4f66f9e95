// Package log builds the process loggers. Components receive a *zap.Logger
// and never reach for a global one.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoder is the kind of log encoding.
type Encoder = string

const (
	// ConsoleEncoder logs with plain text.
	ConsoleEncoder Encoder = "console"
	// JSONEncoder logs with JSON.
	JSONEncoder Encoder = "json"
)

// NewEncoder returns a zap encoder for the kind.
func NewEncoder(kind Encoder) (zapcore.Encoder, error) {
	switch kind {
	case ConsoleEncoder, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case JSONEncoder:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	}
	return nil, fmt.Errorf("unknown log encoder %q", kind)
}

// NewWithLevel creates a logger that writes to w with a fixed level and with
// a set of (optional) hooks.
func NewWithLevel(
	w io.Writer,
	name string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(name)
}

// New creates a stdout logger with the encoder kind. The logger lets
// everything through, modules narrow it down with Module.
func New(name string, kind Encoder) (*zap.Logger, error) {
	encoder, err := NewEncoder(kind)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(os.Stdout, name, zap.NewAtomicLevelAt(zapcore.DebugLevel), encoder), nil
}

// Module returns a named child logger that drops entries below level.
func Module(logger *zap.Logger, name, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse %s log level: %w", name, err)
	}
	return logger.Named(name).WithOptions(zap.IncreaseLevel(lvl)), nil
}
