package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/spf13/cobra"

	"blood-donation-service/internal/adapters/repositories"
	"blood-donation-service/internal/config"
	"blood-donation-service/internal/platform/db"
	"blood-donation-service/internal/platform/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Manage the blood donation database",
	Long: `dbtool creates the database schema and loads blood inventory seed data.
The target database is selected with DB_DRIVER, DB_PATH and DATABASE_URL,
read from the environment or a .env file.`,
	SilenceUsage: true,
}

// env is the state shared by subcommands once the store is open.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	store  *repositories.Store
	db     *sql.DB
}

func (e *env) Close() error {
	return e.db.Close()
}

// openEnv loads configuration, opens the configured database and creates the schema.
func openEnv(ctx context.Context, cmd *cobra.Command) (*env, error) {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	var sqlDB *sql.DB
	if cfg.DBDriver == config.DriverPostgres {
		sqlDB, err = db.Open(cfg.DatabaseURL)
	} else {
		sqlDB, err = db.OpenSqlite(cfg.DBPath)
	}
	if err != nil {
		return nil, err
	}

	store, err := repositories.NewStore(cfg.DBDriver, sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("initializing database schema", "driver", cfg.DBDriver)
	if err := store.InitSchema(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, store: store, db: sqlDB}, nil
}
