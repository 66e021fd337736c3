// Package logging builds the zap logger shared by the wordbook commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/at-ishikawa/wordbook/internal/config"
)

// New builds a logger from cfg. debug forces the debug level.
func New(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	zapCfg, err := buildConfig(cfg, debug)
	if err != nil {
		return nil, err
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func buildConfig(cfg config.LogConfig, debug bool) (zap.Config, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "time"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("parse log level %q: %w", level, err)
	}
	if debug {
		atomicLevel = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zapCfg.Level = atomicLevel
	return zapCfg, nil
}
