package services

import (
	"context"
	"errors"
	"sync/atomic"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/ports"
)

// --- MockDonorRepository ---
var _ ports.DonorRepository = (*MockDonorRepository)(nil)

type MockDonorRepository struct {
	ListDonorsFunc           func(ctx context.Context) ([]domain.Donor, error)
	CreateDonorFunc          func(ctx context.Context, d domain.Donor) (domain.Donor, error)
	GetDonorFunc             func(ctx context.Context, id int64) (domain.Donor, error)
	FindDonorsByLocationFunc func(ctx context.Context, state, city string, eligible bool) ([]domain.Donor, error)

	CreateDonorCallCount int32
}

func (m *MockDonorRepository) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	if m.ListDonorsFunc != nil {
		return m.ListDonorsFunc(ctx)
	}
	return nil, nil
}

func (m *MockDonorRepository) CreateDonor(ctx context.Context, d domain.Donor) (domain.Donor, error) {
	atomic.AddInt32(&m.CreateDonorCallCount, 1)
	if m.CreateDonorFunc != nil {
		return m.CreateDonorFunc(ctx, d)
	}
	return d, nil
}

func (m *MockDonorRepository) GetDonor(ctx context.Context, id int64) (domain.Donor, error) {
	if m.GetDonorFunc != nil {
		return m.GetDonorFunc(ctx, id)
	}
	return domain.Donor{}, errors.New("GetDonorFunc not implemented in mock")
}

func (m *MockDonorRepository) FindDonorsByLocation(ctx context.Context, state, city string, eligible bool) ([]domain.Donor, error) {
	if m.FindDonorsByLocationFunc != nil {
		return m.FindDonorsByLocationFunc(ctx, state, city, eligible)
	}
	return nil, nil
}

// --- MockInventoryRepository ---
var _ ports.InventoryRepository = (*MockInventoryRepository)(nil)

type MockInventoryRepository struct {
	ListInventoryFunc   func(ctx context.Context) ([]domain.BloodInventory, error)
	GetInventoryFunc    func(ctx context.Context, bloodType string) (domain.BloodInventory, error)
	UpsertInventoryFunc func(ctx context.Context, items []domain.BloodInventory) error

	ListInventoryCallCount int32
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context) ([]domain.BloodInventory, error) {
	atomic.AddInt32(&m.ListInventoryCallCount, 1)
	if m.ListInventoryFunc != nil {
		return m.ListInventoryFunc(ctx)
	}
	return nil, nil
}

func (m *MockInventoryRepository) GetInventory(ctx context.Context, bloodType string) (domain.BloodInventory, error) {
	if m.GetInventoryFunc != nil {
		return m.GetInventoryFunc(ctx, bloodType)
	}
	return domain.BloodInventory{}, errors.New("GetInventoryFunc not implemented in mock")
}

func (m *MockInventoryRepository) UpsertInventory(ctx context.Context, items []domain.BloodInventory) error {
	if m.UpsertInventoryFunc != nil {
		return m.UpsertInventoryFunc(ctx, items)
	}
	return nil
}

// --- MockInventoryCache ---
var _ ports.InventoryCache = (*MockInventoryCache)(nil)

// In-memory cache; GetErr/SetErr simulate an unavailable backend.
type MockInventoryCache struct {
	items  []domain.BloodInventory
	filled bool
	GetErr error
	SetErr error
}

func (m *MockInventoryCache) GetInventory(ctx context.Context) ([]domain.BloodInventory, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	return m.items, m.filled, nil
}

func (m *MockInventoryCache) SetInventory(ctx context.Context, items []domain.BloodInventory) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.items, m.filled = items, true
	return nil
}

func (m *MockInventoryCache) Invalidate(ctx context.Context) error {
	m.items, m.filled = nil, false
	return nil
}
