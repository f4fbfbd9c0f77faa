package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/metrics"
	"blood-donation-service/internal/platform/obs"
	"blood-donation-service/internal/ports"
)

// InventoryService exposes read-only access to blood stock.
// When a cache is configured the full listing is read through it; cache
// failures are logged and the store is used instead.
type InventoryService struct {
	repo    ports.InventoryRepository
	cache   ports.InventoryCache
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// cache may be nil.
func NewInventoryService(
	repo ports.InventoryRepository,
	cache ports.InventoryCache,
	logger *slog.Logger,
	m *metrics.Metrics,
) *InventoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryService{
		repo:    repo,
		cache:   cache,
		logger:  logger,
		metrics: m,
	}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.BloodInventory, error) {
	if s.cache != nil {
		items, ok, err := s.cache.GetInventory(ctx)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "inventory cache read failed",
				"req_id", obs.RequestID(ctx), "error", err)
		case ok:
			s.metrics.IncrementInventoryCache(true)
			return items, nil
		}
		s.metrics.IncrementInventoryCache(false)
	}

	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	if items == nil {
		items = []domain.BloodInventory{}
	}

	if s.cache != nil {
		if err := s.cache.SetInventory(ctx, items); err != nil {
			s.logger.WarnContext(ctx, "inventory cache write failed",
				"req_id", obs.RequestID(ctx), "error", err)
		}
	}

	return items, nil
}

func (s *InventoryService) Get(ctx context.Context, bloodType string) (domain.BloodInventory, error) {
	if strings.TrimSpace(bloodType) == "" {
		return domain.BloodInventory{}, fmt.Errorf("get inventory: %w", &domain.ValidationError{
			Problems: []string{"bloodType is required"},
		})
	}

	item, err := s.repo.GetInventory(ctx, bloodType)
	if err != nil {
		return domain.BloodInventory{}, fmt.Errorf("get inventory: %w", err)
	}
	return item, nil
}
