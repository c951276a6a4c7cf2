package adapters

import (
	"context"

	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/loads/domain"
)

// NewMemoryRepository creates an in-memory load store with the
// reference-number uniqueness constraint wired in.
func NewMemoryRepository() *storage.Store[domain.Load] {
	return storage.New(storage.Config[domain.Load]{
		ID:     func(l domain.Load) string { return l.ID },
		WithID: func(l domain.Load, id string) domain.Load { l.ID = id; return l },
		UniqueKeys: []storage.UniqueKey[domain.Load]{
			{Field: "Reference number", Value: func(l domain.Load) string { return l.ReferenceNo }},
		},
	})
}

// ReferencesDriver returns a checker that reports whether any load
// references the given driver id. Used by the drivers feature to block
// deleting an assigned driver.
func ReferencesDriver(store *storage.Store[domain.Load]) func(ctx context.Context, driverID string) (bool, error) {
	return func(ctx context.Context, driverID string) (bool, error) {
		return store.Any(ctx, func(l domain.Load) bool { return l.DriverID == driverID })
	}
}

// ReferencesTruck returns a checker for truck references.
func ReferencesTruck(store *storage.Store[domain.Load]) func(ctx context.Context, truckID string) (bool, error) {
	return func(ctx context.Context, truckID string) (bool, error) {
		return store.Any(ctx, func(l domain.Load) bool { return l.TruckID == truckID })
	}
}

// ReferencesTrailer returns a checker for trailer references.
func ReferencesTrailer(store *storage.Store[domain.Load]) func(ctx context.Context, trailerID string) (bool, error) {
	return func(ctx context.Context, trailerID string) (bool, error) {
		return store.Any(ctx, func(l domain.Load) bool { return l.TrailerID == trailerID })
	}
}

// Seed loads the demo loads used in development mode.
func Seed(store *storage.Store[domain.Load]) {
	store.Seed([]domain.Load{
		{
			ID:           "load-1001",
			ReferenceNo:  "LH-2024-1001",
			Status:       domain.LoadStatusInProgress,
			PickupTime:   "2026-08-20T08:00",
			DeliveryTime: "2026-08-21T16:00",
			PickupLocation: domain.Location{
				Address: "2400 Industrial Blvd",
				City:    "Minneapolis",
				State:   "MN",
				ZipCode: "55401",
			},
			DeliveryLocation: domain.Location{
				Address: "801 Commerce St",
				City:    "Chicago",
				State:   "IL",
				ZipCode: "60611",
			},
			DriverID:      "driver-330",
			TruckID:       "truck-1",
			TrailerID:     "trailer-1",
			BrokerName:    "TQL",
			Amount:        2450,
			FuelSurcharge: 180,
		},
		{
			ID:           "load-1002",
			ReferenceNo:  "LH-2024-1002",
			Status:       domain.LoadStatusPlanned,
			PickupTime:   "2026-09-02T09:30",
			DeliveryTime: "2026-09-03T12:00",
			PickupLocation: domain.Location{
				Address: "15 Harbor Way",
				City:    "Duluth",
				State:   "MN",
				ZipCode: "55802",
			},
			DeliveryLocation: domain.Location{
				Address: "433 Market Ave",
				City:    "Des Moines",
				State:   "IA",
				ZipCode: "50309",
			},
			BrokerName: "CH Robinson",
			Amount:     1890,
		},
	})
}
