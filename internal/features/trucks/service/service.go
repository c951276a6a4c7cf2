package service

import (
	"context"
	"errors"
	"fmt"

	"loadharbour/internal/features/trucks/domain"
	"loadharbour/internal/features/trucks/ports"
)

// ErrTruckInUse is returned when deleting a truck that a load references.
var ErrTruckInUse = errors.New("truck is assigned to a load")

// TruckServiceImpl implements ports.TruckService.
type TruckServiceImpl struct {
	repo    ports.TruckRepository
	loadRef ports.LoadRefChecker
}

// NewTruckService creates a new TruckServiceImpl.
func NewTruckService(repo ports.TruckRepository, loadRef ports.LoadRefChecker) *TruckServiceImpl {
	return &TruckServiceImpl{
		repo:    repo,
		loadRef: loadRef,
	}
}

// List returns the full truck collection, most recent first.
func (s *TruckServiceImpl) List(ctx context.Context) ([]domain.Truck, error) {
	trucks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list trucks: %w", err)
	}
	return trucks, nil
}

// Create validates the truck and stores it. The repository assigns the id.
func (s *TruckServiceImpl) Create(ctx context.Context, truck domain.Truck) (domain.Truck, error) {
	truck.ID = ""
	if err := truck.Validate(); err != nil {
		return domain.Truck{}, err
	}

	created, err := s.repo.Create(ctx, truck)
	if err != nil {
		return domain.Truck{}, fmt.Errorf("service: failed to create truck: %w", err)
	}
	return created, nil
}

// Update applies a partial update to an existing truck. The merged
// record is re-validated before it replaces the stored one.
func (s *TruckServiceImpl) Update(ctx context.Context, id string, patch domain.TruckPatch) (domain.Truck, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Truck{}, fmt.Errorf("service: failed to load truck %s: %w", id, err)
	}

	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		return domain.Truck{}, err
	}

	updated, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return domain.Truck{}, fmt.Errorf("service: failed to update truck %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a truck. Deletion is blocked while a load references it.
func (s *TruckServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("service: failed to load truck %s: %w", id, err)
	}

	if s.loadRef != nil {
		inUse, err := s.loadRef(ctx, id)
		if err != nil {
			return fmt.Errorf("service: failed to check truck references: %w", err)
		}
		if inUse {
			return ErrTruckInUse
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete truck %s: %w", id, err)
	}
	return nil
}
