package service

import (
	"context"
	"fmt"

	"loadharbour/internal/core/validate"
	"loadharbour/internal/features/loads/domain"
	"loadharbour/internal/features/loads/ports"
)

// LoadServiceImpl implements ports.LoadService.
type LoadServiceImpl struct {
	repo  ports.LoadRepository
	assoc ports.Associations
}

// NewLoadService creates a new LoadServiceImpl.
func NewLoadService(repo ports.LoadRepository, assoc ports.Associations) *LoadServiceImpl {
	return &LoadServiceImpl{
		repo:  repo,
		assoc: assoc,
	}
}

// List returns the full load collection, most recent first.
func (s *LoadServiceImpl) List(ctx context.Context) ([]domain.Load, error) {
	loads, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list loads: %w", err)
	}
	return loads, nil
}

// Create validates the load, checks its associations, and stores it.
func (s *LoadServiceImpl) Create(ctx context.Context, load domain.Load) (domain.Load, error) {
	load.ID = ""
	if err := load.Validate(); err != nil {
		return domain.Load{}, err
	}
	if err := s.checkAssociations(ctx, load); err != nil {
		return domain.Load{}, err
	}

	created, err := s.repo.Create(ctx, load)
	if err != nil {
		return domain.Load{}, fmt.Errorf("service: failed to create load: %w", err)
	}
	return created, nil
}

// Update applies a partial update and re-validates the merged record.
func (s *LoadServiceImpl) Update(ctx context.Context, id string, patch domain.LoadPatch) (domain.Load, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Load{}, fmt.Errorf("service: failed to load load %s: %w", id, err)
	}

	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		return domain.Load{}, err
	}
	if err := s.checkAssociations(ctx, merged); err != nil {
		return domain.Load{}, err
	}

	updated, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return domain.Load{}, fmt.Errorf("service: failed to update load %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a load unconditionally.
func (s *LoadServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete load %s: %w", id, err)
	}
	return nil
}

// checkAssociations verifies that the optionally referenced driver,
// truck, and trailer exist. Missing references surface as field errors
// so the form can annotate the offending select.
func (s *LoadServiceImpl) checkAssociations(ctx context.Context, load domain.Load) error {
	errs := validate.Errors{}

	check := func(field, id string, exists ports.ExistsChecker, msg string) error {
		if id == "" || exists == nil {
			return nil
		}
		ok, err := exists(ctx, id)
		if err != nil {
			return fmt.Errorf("service: failed to check %s reference: %w", field, err)
		}
		if !ok {
			errs[field] = msg
		}
		return nil
	}

	if err := check("driverId", load.DriverID, s.assoc.Driver, "Driver not found"); err != nil {
		return err
	}
	if err := check("truckId", load.TruckID, s.assoc.Truck, "Truck not found"); err != nil {
		return err
	}
	if err := check("trailerId", load.TrailerID, s.assoc.Trailer, "Trailer not found"); err != nil {
		return err
	}

	if errs.Any() {
		return errs
	}
	return nil
}
