package service

import (
	"context"
	"fmt"
	"time"

	"loadharbour/internal/core/validate"
	"loadharbour/internal/features/receivables/domain"
	"loadharbour/internal/features/receivables/ports"
)

// ReceivableServiceImpl implements ports.ReceivableService.
type ReceivableServiceImpl struct {
	repo      ports.ReceivableRepository
	loadExist ports.LoadChecker
	now       func() time.Time
}

// NewReceivableService creates a new ReceivableServiceImpl.
func NewReceivableService(repo ports.ReceivableRepository, loadExist ports.LoadChecker) *ReceivableServiceImpl {
	return &ReceivableServiceImpl{
		repo:      repo,
		loadExist: loadExist,
		now:       time.Now,
	}
}

// List returns the full receivable collection, most recent first.
func (s *ReceivableServiceImpl) List(ctx context.Context) ([]domain.AccountReceivable, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list receivables: %w", err)
	}
	return items, nil
}

// Create validates the receivable, recomputes its total, and stamps
// creation time before storing it.
func (s *ReceivableServiceImpl) Create(ctx context.Context, ar domain.AccountReceivable) (domain.AccountReceivable, error) {
	ar.ID = ""
	if err := ar.Validate(); err != nil {
		return domain.AccountReceivable{}, err
	}
	if err := s.checkLoad(ctx, ar.LoadID); err != nil {
		return domain.AccountReceivable{}, err
	}

	now := s.now().UTC().Format(time.RFC3339)
	ar.TotalAmount = ar.Total()
	ar.CreatedAt = now
	ar.UpdatedAt = now
	if ar.AdditionalCharges == nil {
		ar.AdditionalCharges = []domain.AdditionalCharge{}
	}
	if ar.Status.Documents == nil {
		ar.Status.Documents = []domain.Document{}
	}

	created, err := s.repo.Create(ctx, ar)
	if err != nil {
		return domain.AccountReceivable{}, fmt.Errorf("service: failed to create receivable: %w", err)
	}
	return created, nil
}

// Update applies a partial update, re-validates the merged record, and
// recomputes the total. CreatedAt is preserved; UpdatedAt moves.
func (s *ReceivableServiceImpl) Update(ctx context.Context, id string, patch domain.ReceivablePatch) (domain.AccountReceivable, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.AccountReceivable{}, fmt.Errorf("service: failed to load receivable %s: %w", id, err)
	}

	merged := patch.Apply(existing)
	if err := merged.Validate(); err != nil {
		return domain.AccountReceivable{}, err
	}
	if patch.LoadID != nil {
		if err := s.checkLoad(ctx, merged.LoadID); err != nil {
			return domain.AccountReceivable{}, err
		}
	}

	merged.TotalAmount = merged.Total()
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	updated, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return domain.AccountReceivable{}, fmt.Errorf("service: failed to update receivable %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a receivable.
func (s *ReceivableServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete receivable %s: %w", id, err)
	}
	return nil
}

func (s *ReceivableServiceImpl) checkLoad(ctx context.Context, loadID string) error {
	if loadID == "" || s.loadExist == nil {
		return nil
	}
	ok, err := s.loadExist(ctx, loadID)
	if err != nil {
		return fmt.Errorf("service: failed to check load reference: %w", err)
	}
	if !ok {
		return validate.Errors{"loadId": "Load not found"}
	}
	return nil
}
