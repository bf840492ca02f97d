// Package logging builds the process-wide zap logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects level and encoding of the root logger.
type Config struct {
	Level  string
	Format string // "json" or "console"
}

// New creates the root logger and returns it with a runtime-adjustable level
// handle.
func New(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	var parsed zapcore.Level
	if err := parsed.Set(cfg.Level); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
	}
	level := zap.NewAtomicLevelAt(parsed)

	var baseConfig zap.Config
	switch cfg.Format {
	case "", "json":
		baseConfig = zap.NewProductionConfig()
		baseConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "console":
		baseConfig = zap.NewDevelopmentConfig()
		baseConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid format %q", cfg.Format)
	}

	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	built, err := baseConfig.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return built.With(zap.String("service", "ledger")), level, nil
}
