package ports

import (
	"context"

	"loadharbour/internal/features/receivables/domain"
)

// ReceivableService defines the primary port for receivable operations.
type ReceivableService interface {
	List(ctx context.Context) ([]domain.AccountReceivable, error)
	Create(ctx context.Context, ar domain.AccountReceivable) (domain.AccountReceivable, error)
	Update(ctx context.Context, id string, patch domain.ReceivablePatch) (domain.AccountReceivable, error)
	Delete(ctx context.Context, id string) error
}

// ReceivableRepository defines the secondary port for receivable storage.
type ReceivableRepository interface {
	List(ctx context.Context) ([]domain.AccountReceivable, error)
	Get(ctx context.Context, id string) (domain.AccountReceivable, error)
	Create(ctx context.Context, ar domain.AccountReceivable) (domain.AccountReceivable, error)
	Update(ctx context.Context, id string, merged domain.AccountReceivable) (domain.AccountReceivable, error)
	Delete(ctx context.Context, id string) error
}

// LoadChecker reports whether the referenced load id exists. Wired at
// composition time against the loads store.
type LoadChecker func(ctx context.Context, id string) (bool, error)
