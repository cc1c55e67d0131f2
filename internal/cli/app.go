package cli

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/config"
)

// app holds the state shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sqlx.DB
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == config.EnvLocal {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setup loads the configuration, installs the global logger and connects to
// the database. When migrate is set, pending migrations are applied.
func setup(ctx context.Context, migrate bool) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DB.Driver, err)
	}

	rt := &app{cfg: cfg, logger: logger, db: db}
	if migrate {
		if err := rt.migrate(ctx); err != nil {
			rt.close()
			return nil, err
		}
	}

	return rt, nil
}

func (rt *app) migrate(ctx context.Context) error {
	applied, err := dbadapter.Migrate(ctx, rt.db)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, version := range applied {
		rt.logger.Info("migration applied", zap.String("version", version))
	}
	return nil
}

func (rt *app) close() {
	if err := rt.db.Close(); err != nil {
		rt.logger.Warn("failed to close database connection", zap.Error(err))
	}
	if err := rt.logger.Sync(); err != nil {
		rt.logger.Debug("failed to sync logger", zap.Error(err))
	}
}
