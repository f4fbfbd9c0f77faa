package ports

import (
	"context"

	"blood-donation-service/internal/domain"
)

// Optional read-through cache for the inventory listing.
type InventoryCache interface {
	// Return the cached listing; ok is false on a miss.
	GetInventory(ctx context.Context) (items []domain.BloodInventory, ok bool, err error)
	SetInventory(ctx context.Context, items []domain.BloodInventory) error
	// Drop the cached listing so the next read goes to the store.
	Invalidate(ctx context.Context) error
}
