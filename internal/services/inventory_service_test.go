package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/metrics"
)

var stock = []domain.BloodInventory{
	{BloodType: "A+", Units: 45},
	{BloodType: "O-", Units: 9},
}

func stockRepo() *MockInventoryRepository {
	return &MockInventoryRepository{
		ListInventoryFunc: func(ctx context.Context) ([]domain.BloodInventory, error) {
			return stock, nil
		},
	}
}

func TestInventoryServiceListWithoutCache(t *testing.T) {
	repo := stockRepo()
	svc := NewInventoryService(repo, nil, nil, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stock, got)
	assert.Equal(t, int32(1), repo.ListInventoryCallCount)
}

func TestInventoryServiceListEmptyStore(t *testing.T) {
	svc := NewInventoryService(&MockInventoryRepository{}, nil, nil, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInventoryServiceReadsThroughCache(t *testing.T) {
	repo := stockRepo()
	cache := &MockInventoryCache{}
	m := metrics.New(prometheus.NewRegistry())
	svc := NewInventoryService(repo, cache, nil, m)

	for i := 0; i < 3; i++ {
		got, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stock, got)
	}

	assert.Equal(t, int32(1), repo.ListInventoryCallCount, "only the first call should reach the store")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.InventoryCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InventoryCacheMiss))

	require.NoError(t, cache.Invalidate(context.Background()))
	_, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), repo.ListInventoryCallCount)
}

func TestInventoryServiceCacheFailureFallsBackToStore(t *testing.T) {
	repo := stockRepo()
	cache := &MockInventoryCache{GetErr: errors.New("redis down"), SetErr: errors.New("redis down")}
	svc := NewInventoryService(repo, cache, nil, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stock, got)
	assert.Equal(t, int32(1), repo.ListInventoryCallCount)
}

func TestInventoryServiceStoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	repo := &MockInventoryRepository{
		ListInventoryFunc: func(ctx context.Context) ([]domain.BloodInventory, error) {
			return nil, storeErr
		},
	}
	cache := &MockInventoryCache{}
	svc := NewInventoryService(repo, cache, nil, nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, storeErr)

	_, ok, _ := cache.GetInventory(context.Background())
	assert.False(t, ok, "failed loads must not be cached")
}

func TestInventoryServiceGet(t *testing.T) {
	repo := &MockInventoryRepository{
		GetInventoryFunc: func(ctx context.Context, bloodType string) (domain.BloodInventory, error) {
			if bloodType == "O-" {
				return domain.BloodInventory{BloodType: "O-", Units: 9}, nil
			}
			return domain.BloodInventory{}, domain.ErrNotFound
		},
	}
	svc := NewInventoryService(repo, nil, nil, nil)

	item, err := svc.Get(context.Background(), "O-")
	require.NoError(t, err)
	assert.Equal(t, 9, item.Units)

	_, err = svc.Get(context.Background(), "Z+")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
