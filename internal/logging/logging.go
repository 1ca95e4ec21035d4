// Package logging builds the zap loggers used by the swrdetect command and
// the batch pipeline.
package logging

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures a logger built by New.
type Option func(*settings)

type settings struct {
	level       zapcore.Level
	development bool
	fields      map[string]any
	out         zapcore.WriteSyncer
}

// WithLevel sets the minimum level from its name. Unknown names fall back
// to info.
func WithLevel(name string) Option {
	return func(s *settings) { s.level = ParseLevel(name) }
}

// WithDevelopment switches to the human-readable console encoder with
// debug-friendly settings.
func WithDevelopment(dev bool) Option {
	return func(s *settings) { s.development = dev }
}

// WithFields attaches fields to every entry.
func WithFields(fields map[string]any) Option {
	return func(s *settings) {
		for k, v := range fields {
			if k == "" {
				continue
			}
			s.fields[k] = v
		}
	}
}

// WithOutput redirects entries to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = zapcore.AddSync(w)
		}
	}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New returns a logger writing JSON (or console text in development mode)
// to stderr.
func New(opts ...Option) *zap.Logger {
	s := settings{
		level:  zapcore.InfoLevel,
		fields: map[string]any{},
		out:    zapcore.Lock(os.Stderr),
	}
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}

	var enc zapcore.Encoder
	if s.development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(enc, s.out, zap.NewAtomicLevelAt(s.level))
	logger := zap.New(core, zap.AddCaller())
	if len(s.fields) > 0 {
		fields := make([]zap.Field, 0, len(s.fields))
		for k, v := range s.fields {
			fields = append(fields, zap.Any(k, v))
		}
		logger = logger.With(fields...)
	}
	return logger
}

// Sync flushes logger, ignoring the errors terminals return for fsync.
func Sync(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}
	err := logger.Sync()
	if err == nil || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) {
		return nil
	}
	return err
}
