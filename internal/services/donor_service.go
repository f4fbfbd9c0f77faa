package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/metrics"
	"blood-donation-service/internal/platform/obs"
	"blood-donation-service/internal/ports"
)

// DonorService owns donor registration and the eligible-donor search.
type DonorService struct {
	repo    ports.DonorRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewDonorService(repo ports.DonorRepository, logger *slog.Logger, m *metrics.Metrics) *DonorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DonorService{
		repo:    repo,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for registration dates.
func (s *DonorService) WithClock(now func() time.Time) *DonorService {
	s.now = now
	return s
}

func (s *DonorService) List(ctx context.Context) ([]domain.Donor, error) {
	donors, err := s.repo.ListDonors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

// Register stores a new donor. The registration date, eligibility and id
// supplied by the caller are replaced before the record is persisted.
func (s *DonorService) Register(ctx context.Context, d domain.Donor) (domain.Donor, error) {
	d = d.PrepareRegistration(s.now())
	if err := d.Validate(); err != nil {
		return domain.Donor{}, fmt.Errorf("register donor: %w", err)
	}

	created, err := s.repo.CreateDonor(ctx, d)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("register donor: %w", err)
	}

	s.metrics.IncrementDonorsRegistered()
	s.logger.InfoContext(ctx, "donor registered",
		"req_id", obs.RequestID(ctx),
		"donor_id", created.ID,
		"state", created.State,
		"city", created.City,
	)

	return created, nil
}

// SearchEligible returns eligible donors located exactly in q.State and q.City.
// No matches is an empty, non-nil slice.
func (s *DonorService) SearchEligible(ctx context.Context, q domain.DonorSearch) ([]domain.Donor, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("search donors: %w", err)
	}

	donors, err := s.repo.FindDonorsByLocation(ctx, q.State, q.City, true)
	if err != nil {
		return nil, fmt.Errorf("search donors: %w", err)
	}
	if donors == nil {
		donors = []domain.Donor{}
	}
	return donors, nil
}

func (s *DonorService) Get(ctx context.Context, id int64) (domain.Donor, error) {
	if id <= 0 {
		return domain.Donor{}, fmt.Errorf("get donor: %w", &domain.ValidationError{
			Problems: []string{"id must be a positive integer"},
		})
	}

	d, err := s.repo.GetDonor(ctx, id)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("get donor: %w", err)
	}
	return d, nil
}
