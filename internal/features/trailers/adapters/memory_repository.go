package adapters

import (
	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/trailers/domain"
)

// NewMemoryRepository creates an in-memory trailer store with the
// trailer uniqueness constraints wired in.
func NewMemoryRepository() *storage.Store[domain.Trailer] {
	return storage.New(storage.Config[domain.Trailer]{
		ID:     func(t domain.Trailer) string { return t.ID },
		WithID: func(t domain.Trailer, id string) domain.Trailer { t.ID = id; return t },
		UniqueKeys: []storage.UniqueKey[domain.Trailer]{
			{Field: "Unit number", Value: func(t domain.Trailer) string { return t.UnitNo }},
			{Field: "Plate number", Value: func(t domain.Trailer) string { return t.PlateNo }},
			{Field: "VIN", Value: func(t domain.Trailer) string { return t.VIN }},
		},
	})
}

// Seed loads the demo trailers used in development mode.
func Seed(store *storage.Store[domain.Trailer]) {
	store.Seed([]domain.Trailer{
		{
			ID:      "trailer-1",
			UnitNo:  "TRL-001",
			PlateNo: "ABC123",
			VIN:     "1HGCM82633A123456",
			Type:    domain.TrailerTypeDryVan,
			Length:  "53",
			Year:    "2022",
			Status:  domain.TrailerStatusActive,
		},
		{
			ID:      "trailer-2",
			UnitNo:  "TRL-002",
			PlateNo: "XYZ789",
			VIN:     "2FZHAZBS11AV00500",
			Type:    domain.TrailerTypeReefer,
			Length:  "48",
			Year:    "2021",
			Status:  domain.TrailerStatusMaintenance,
		},
	})
}
