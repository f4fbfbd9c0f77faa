package ports

import (
	"context"

	"blood-donation-service/internal/domain"
)

// Port: a boundary for persisting and querying Donor records.
type DonorRepository interface {
	// Return all donors ordered by id.
	ListDonors(ctx context.Context) ([]domain.Donor, error)
	// Insert a donor and return it with the store-assigned id.
	CreateDonor(ctx context.Context, d domain.Donor) (domain.Donor, error)
	// Return one donor; wraps domain.ErrNotFound when the id is unknown.
	GetDonor(ctx context.Context, id int64) (domain.Donor, error)
	// Return donors with an exact state and city match and the given eligibility.
	FindDonorsByLocation(ctx context.Context, state, city string, eligible bool) ([]domain.Donor, error)
}
