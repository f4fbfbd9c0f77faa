package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blood-donation-service/internal/config"
	"blood-donation-service/internal/ports"
)

// Store bundles the repositories for one database handle and dialect.
type Store struct {
	DB        *sql.DB
	Driver    string
	Donors    ports.DonorRepository
	Inventory ports.InventoryRepository
}

// NewStore selects the repository implementations matching driver.
func NewStore(driver string, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("new store: DB is nil")
	}

	switch driver {
	case config.DriverSqlite:
		return &Store{
			DB:        db,
			Driver:    driver,
			Donors:    NewSqliteDonorRepository(db),
			Inventory: NewSqliteInventoryRepository(db),
		}, nil
	case config.DriverPostgres:
		return &Store{
			DB:        db,
			Driver:    driver,
			Donors:    NewSQLDonorRepository(db),
			Inventory: NewSQLInventoryRepository(db),
		}, nil
	default:
		return nil, fmt.Errorf("new store: unsupported driver %q", driver)
	}
}

// InitSchema creates the tables for the store's dialect.
func (s *Store) InitSchema(ctx context.Context) error {
	if s.Driver == config.DriverPostgres {
		return InitPostgresSchema(ctx, s.DB)
	}
	return InitSchema(ctx, s.DB)
}

// SeedInventory loads seed rows from jsonPath and upserts them.
// It returns the number of rows written.
func (s *Store) SeedInventory(ctx context.Context, jsonPath string) (int, error) {
	items, err := LoadInventorySeed(jsonPath)
	if err != nil {
		return 0, err
	}

	if err := s.Inventory.UpsertInventory(ctx, items); err != nil {
		return 0, fmt.Errorf("seed inventory: %w", err)
	}

	return len(items), nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
