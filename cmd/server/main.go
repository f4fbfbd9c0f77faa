package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"blood-donation-service/internal/adapters/cache"
	"blood-donation-service/internal/adapters/repositories"
	"blood-donation-service/internal/api"
	"blood-donation-service/internal/config"
	"blood-donation-service/internal/platform/db"
	"blood-donation-service/internal/platform/logging"
	"blood-donation-service/internal/platform/metrics"
	"blood-donation-service/internal/ports"
	"blood-donation-service/internal/services"
)

const shutdownTimeout = 10 * time.Second

// main is the application composition root.
// It wires concrete adapters (SQL store, Redis cache) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	hasDotEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	if !hasDotEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	store, err := repositories.NewStore(cfg.DBDriver, sqlDB)
	if err != nil {
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	inventoryCache, closeCache, err := openInventoryCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	if err := prepareStore(ctx, cfg, store, inventoryCache, logger); err != nil {
		return err
	}

	donors := services.NewDonorService(store.Donors, logger, m)
	inventory := services.NewInventoryService(store.Inventory, inventoryCache, logger, m)

	router := api.NewRouter(api.Deps{
		Donors:    donors,
		Inventory: inventory,
		Store:     store,
		Logger:    logger,
		Metrics:   m,
		Gatherer:  prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", srv.Addr, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", shutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// prepareStore creates the schema and, when enabled, seeds inventory for local runs.
// A cached listing can outlive the previous process, so it is dropped after seeding.
func prepareStore(
	ctx context.Context,
	cfg config.Config,
	store *repositories.Store,
	inventoryCache ports.InventoryCache,
	logger *slog.Logger,
) error {
	if err := store.InitSchema(ctx); err != nil {
		return err
	}
	if !cfg.SeedOnStart {
		return nil
	}

	n, err := store.SeedInventory(ctx, cfg.SeedPath)
	if err != nil {
		return err
	}
	logger.Info("inventory seeded", "path", cfg.SeedPath, "rows", n)

	if inventoryCache != nil {
		if err := inventoryCache.Invalidate(ctx); err != nil {
			return fmt.Errorf("prepare store: %w", err)
		}
	}
	return nil
}

func openDB(cfg config.Config) (*sql.DB, error) {
	if cfg.DBDriver == config.DriverPostgres {
		return db.Open(cfg.DatabaseURL)
	}
	return db.OpenSqlite(cfg.DBPath)
}

// openInventoryCache returns a nil cache when REDIS_URL is unset.
func openInventoryCache(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.InventoryCache, func(), error) {
	if cfg.RedisURL == "" {
		return nil, func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("inventory cache enabled", "ttl", cfg.InventoryCacheTTL)
	return cache.NewRedisInventoryCache(client, cfg.InventoryCacheTTL), func() { _ = client.Close() }, nil
}
