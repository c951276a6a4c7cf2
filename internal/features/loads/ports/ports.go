package ports

import (
	"context"

	"loadharbour/internal/features/loads/domain"
)

// LoadService defines the primary port for load operations.
type LoadService interface {
	List(ctx context.Context) ([]domain.Load, error)
	Create(ctx context.Context, load domain.Load) (domain.Load, error)
	Update(ctx context.Context, id string, patch domain.LoadPatch) (domain.Load, error)
	Delete(ctx context.Context, id string) error
}

// LoadRepository defines the secondary port for load storage.
type LoadRepository interface {
	List(ctx context.Context) ([]domain.Load, error)
	Get(ctx context.Context, id string) (domain.Load, error)
	Create(ctx context.Context, load domain.Load) (domain.Load, error)
	Update(ctx context.Context, id string, merged domain.Load) (domain.Load, error)
	Delete(ctx context.Context, id string) error
}

// ExistsChecker reports whether the referenced record id exists in
// another feature's collection. Wired at composition time.
type ExistsChecker func(ctx context.Context, id string) (bool, error)

// Associations bundles the existence checks for a load's optional
// driver, truck, and trailer references.
type Associations struct {
	Driver  ExistsChecker
	Truck   ExistsChecker
	Trailer ExistsChecker
}
