package ports

import (
	"context"

	"loadharbour/internal/features/drivers/domain"
)

// DriverService defines the primary port for driver operations.
type DriverService interface {
	List(ctx context.Context) ([]domain.Driver, error)
	Create(ctx context.Context, driver domain.Driver) (domain.Driver, error)
	Update(ctx context.Context, id string, patch domain.DriverPatch) (domain.Driver, error)
	Delete(ctx context.Context, id string) error
}

// DriverRepository defines the secondary port for driver storage.
type DriverRepository interface {
	List(ctx context.Context) ([]domain.Driver, error)
	Get(ctx context.Context, id string) (domain.Driver, error)
	Create(ctx context.Context, driver domain.Driver) (domain.Driver, error)
	Update(ctx context.Context, id string, merged domain.Driver) (domain.Driver, error)
	Delete(ctx context.Context, id string) error
}

// LoadRefChecker reports whether any load references the given driver id.
type LoadRefChecker func(ctx context.Context, driverID string) (bool, error)
