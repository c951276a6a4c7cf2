package ports

import (
	"context"

	"loadharbour/internal/features/trailers/domain"
)

// TrailerService defines the primary port for trailer operations.
type TrailerService interface {
	List(ctx context.Context) ([]domain.Trailer, error)
	Create(ctx context.Context, trailer domain.Trailer) (domain.Trailer, error)
	Update(ctx context.Context, id string, patch domain.TrailerPatch) (domain.Trailer, error)
	Delete(ctx context.Context, id string) error
}

// TrailerRepository defines the secondary port for trailer storage.
type TrailerRepository interface {
	List(ctx context.Context) ([]domain.Trailer, error)
	Get(ctx context.Context, id string) (domain.Trailer, error)
	Create(ctx context.Context, trailer domain.Trailer) (domain.Trailer, error)
	Update(ctx context.Context, id string, merged domain.Trailer) (domain.Trailer, error)
	Delete(ctx context.Context, id string) error
}

// LoadRefChecker reports whether any load references the given trailer id.
type LoadRefChecker func(ctx context.Context, trailerID string) (bool, error)
