package service

import (
	"context"
	"errors"
	"fmt"

	"loadharbour/internal/features/drivers/domain"
	"loadharbour/internal/features/drivers/ports"
)

// ErrDriverInUse is returned when deleting a driver that a load references.
var ErrDriverInUse = errors.New("driver is assigned to a load")

// DriverServiceImpl implements ports.DriverService.
type DriverServiceImpl struct {
	repo    ports.DriverRepository
	loadRef ports.LoadRefChecker
}

// NewDriverService creates a new DriverServiceImpl.
func NewDriverService(repo ports.DriverRepository, loadRef ports.LoadRefChecker) *DriverServiceImpl {
	return &DriverServiceImpl{
		repo:    repo,
		loadRef: loadRef,
	}
}

// List returns the full driver collection, most recent first.
func (s *DriverServiceImpl) List(ctx context.Context) ([]domain.Driver, error) {
	drivers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list drivers: %w", err)
	}
	return drivers, nil
}

// Create validates the driver and stores it.
func (s *DriverServiceImpl) Create(ctx context.Context, driver domain.Driver) (domain.Driver, error) {
	driver.ID = ""
	if err := driver.Validate(); err != nil {
		return domain.Driver{}, err
	}

	created, err := s.repo.Create(ctx, driver)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("service: failed to create driver: %w", err)
	}
	return created, nil
}

// Update applies a partial update and re-validates the merged record.
func (s *DriverServiceImpl) Update(ctx context.Context, id string, patch domain.DriverPatch) (domain.Driver, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("service: failed to load driver %s: %w", id, err)
	}

	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		return domain.Driver{}, err
	}

	updated, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("service: failed to update driver %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a driver. Deletion is blocked while a load references it.
func (s *DriverServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("service: failed to load driver %s: %w", id, err)
	}

	if s.loadRef != nil {
		inUse, err := s.loadRef(ctx, id)
		if err != nil {
			return fmt.Errorf("service: failed to check driver references: %w", err)
		}
		if inUse {
			return ErrDriverInUse
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete driver %s: %w", id, err)
	}
	return nil
}
