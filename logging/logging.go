// Package logging builds the process-wide zap logger from configuration.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrUnknownFormat indicates an encoding other than json or console.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Options selects level, encoding and development mode.
type Options struct {
	Level       string
	Format      string
	Development bool
}

// New returns a logger and the AtomicLevel controlling it, so the level can be
// changed at runtime (see config.Watcher).
func New(opts Options) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	var cfg zap.Config
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	switch strings.ToLower(opts.Format) {
	case "":
	case FormatJSON, FormatConsole:
		cfg.Encoding = strings.ToLower(opts.Format)
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	atom := zap.NewAtomicLevelAt(level)
	cfg.Level = atom

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("logging: build: %w", err)
	}

	return logger, atom, nil
}

// ParseLevel maps "debug", "info", "warn", "error" (any case, empty = info) to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return l, nil
}
