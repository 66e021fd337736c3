package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/logging"
)

type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sqlx.DB
}

// connect loads the configuration and opens a database connection that has answered a ping.
func connect(ctx context.Context) (*environment, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log, debugMode)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Ping(ctx, db, cfg.Database.ConnectRetries, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &environment{cfg: cfg, logger: logger, db: db}, nil
}

func (e *environment) Close() {
	_ = e.db.Close()
	_ = e.logger.Sync()
}
