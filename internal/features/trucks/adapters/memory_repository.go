package adapters

import (
	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/trucks/domain"
)

// NewMemoryRepository creates an in-memory truck store with the truck
// uniqueness constraints wired in.
func NewMemoryRepository() *storage.Store[domain.Truck] {
	return storage.New(storage.Config[domain.Truck]{
		ID:     func(t domain.Truck) string { return t.ID },
		WithID: func(t domain.Truck, id string) domain.Truck { t.ID = id; return t },
		UniqueKeys: []storage.UniqueKey[domain.Truck]{
			{Field: "Unit number", Value: func(t domain.Truck) string { return t.UnitNo }},
			{Field: "Plate number", Value: func(t domain.Truck) string { return t.PlateNo }},
			{Field: "VIN", Value: func(t domain.Truck) string { return t.VIN }},
		},
	})
}

// Seed loads the demo fleet used in development mode.
func Seed(store *storage.Store[domain.Truck]) {
	store.Seed([]domain.Truck{
		{
			ID:      "truck-1",
			UnitNo:  "TRK-101",
			PlateNo: "MN-4821",
			VIN:     "1FUJGLDR2ALAV8821",
			Make:    "Freightliner",
			Model:   "Cascadia",
			Year:    "2021",
			Status:  domain.TruckStatusActive,
		},
		{
			ID:      "truck-2",
			UnitNo:  "TRK-102",
			PlateNo: "MN-5530",
			VIN:     "3AKJHHDR9LSLU9043",
			Make:    "Kenworth",
			Model:   "T680",
			Year:    "2019",
			Status:  domain.TruckStatusMaintenance,
		},
	})
}
