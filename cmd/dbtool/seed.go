package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blood-donation-service/internal/adapters/cache"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load blood inventory from a JSON seed file",
	Long: `Creates the schema if needed and upserts every inventory row in the seed file.
Rows already present are overwritten. When REDIS_URL is set the cached
inventory listing is invalidated afterwards.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "seed file path (default SEED_PATH)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	e, err := openEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	path := seedFile
	if path == "" {
		path = e.cfg.SeedPath
	}

	e.logger.Info("seeding inventory", "path", path)
	n, err := e.store.SeedInventory(ctx, path)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if e.cfg.RedisURL != "" {
		if err := invalidateInventoryCache(ctx, e.cfg.RedisURL); err != nil {
			return err
		}
		e.logger.Info("inventory cache invalidated")
	}

	cmd.Printf("Seeded %d inventory rows from %s.\n", n, path)
	return nil
}

func invalidateInventoryCache(ctx context.Context, redisURL string) error {
	client, err := cache.NewRedisClient(ctx, redisURL)
	if err != nil {
		return fmt.Errorf("invalidate inventory cache: %w", err)
	}
	defer client.Close()

	// TTL is irrelevant for deletes.
	return cache.NewRedisInventoryCache(client, 0).Invalidate(ctx)
}
