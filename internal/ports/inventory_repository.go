package ports

import (
	"context"

	"blood-donation-service/internal/domain"
)

// Port: a boundary for reading and seeding BloodInventory records.
type InventoryRepository interface {
	// Return all inventory rows ordered by blood type.
	ListInventory(ctx context.Context) ([]domain.BloodInventory, error)
	// Return one row; wraps domain.ErrNotFound when the code is unknown.
	GetInventory(ctx context.Context, bloodType string) (domain.BloodInventory, error)
	// Insert or overwrite the given rows in one transaction.
	UpsertInventory(ctx context.Context, items []domain.BloodInventory) error
}
