package ports

import (
	"context"

	"loadharbour/internal/features/trucks/domain"
)

// TruckService defines the primary port for truck operations.
type TruckService interface {
	List(ctx context.Context) ([]domain.Truck, error)
	Create(ctx context.Context, truck domain.Truck) (domain.Truck, error)
	Update(ctx context.Context, id string, patch domain.TruckPatch) (domain.Truck, error)
	Delete(ctx context.Context, id string) error
}

// TruckRepository defines the secondary port for truck storage.
type TruckRepository interface {
	List(ctx context.Context) ([]domain.Truck, error)
	Get(ctx context.Context, id string) (domain.Truck, error)
	Create(ctx context.Context, truck domain.Truck) (domain.Truck, error)
	Update(ctx context.Context, id string, merged domain.Truck) (domain.Truck, error)
	Delete(ctx context.Context, id string) error
}

// LoadRefChecker reports whether any load references the given truck id.
// Wired at composition time to avoid a dependency on the loads feature.
type LoadRefChecker func(ctx context.Context, truckID string) (bool, error)
