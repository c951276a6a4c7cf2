package service

import (
	"context"
	"errors"
	"fmt"

	"loadharbour/internal/features/trailers/domain"
	"loadharbour/internal/features/trailers/ports"
)

// ErrTrailerInUse is returned when deleting a trailer that a load references.
var ErrTrailerInUse = errors.New("trailer is assigned to a load")

// TrailerServiceImpl implements ports.TrailerService.
type TrailerServiceImpl struct {
	repo    ports.TrailerRepository
	loadRef ports.LoadRefChecker
}

// NewTrailerService creates a new TrailerServiceImpl.
func NewTrailerService(repo ports.TrailerRepository, loadRef ports.LoadRefChecker) *TrailerServiceImpl {
	return &TrailerServiceImpl{
		repo:    repo,
		loadRef: loadRef,
	}
}

// List returns the full trailer collection, most recent first.
func (s *TrailerServiceImpl) List(ctx context.Context) ([]domain.Trailer, error) {
	trailers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list trailers: %w", err)
	}
	return trailers, nil
}

// Create validates the trailer and stores it.
func (s *TrailerServiceImpl) Create(ctx context.Context, trailer domain.Trailer) (domain.Trailer, error) {
	trailer.ID = ""
	if err := trailer.Validate(); err != nil {
		return domain.Trailer{}, err
	}

	created, err := s.repo.Create(ctx, trailer)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service: failed to create trailer: %w", err)
	}
	return created, nil
}

// Update applies a partial update and re-validates the merged record.
func (s *TrailerServiceImpl) Update(ctx context.Context, id string, patch domain.TrailerPatch) (domain.Trailer, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service: failed to load trailer %s: %w", id, err)
	}

	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		return domain.Trailer{}, err
	}

	updated, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return domain.Trailer{}, fmt.Errorf("service: failed to update trailer %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a trailer. Deletion is blocked while a load references it.
func (s *TrailerServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("service: failed to load trailer %s: %w", id, err)
	}

	if s.loadRef != nil {
		inUse, err := s.loadRef(ctx, id)
		if err != nil {
			return fmt.Errorf("service: failed to check trailer references: %w", err)
		}
		if inUse {
			return ErrTrailerInUse
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete trailer %s: %w", id, err)
	}
	return nil
}
