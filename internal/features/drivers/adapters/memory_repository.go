package adapters

import (
	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/drivers/domain"
)

// NewMemoryRepository creates an in-memory driver store. Drivers carry
// no uniqueness-constrained fields beyond the id itself.
func NewMemoryRepository() *storage.Store[domain.Driver] {
	return storage.New(storage.Config[domain.Driver]{
		ID:     func(d domain.Driver) string { return d.ID },
		WithID: func(d domain.Driver, id string) domain.Driver { d.ID = id; return d },
	})
}

// Seed loads the demo drivers used in development mode.
func Seed(store *storage.Store[domain.Driver]) {
	store.Seed([]domain.Driver{
		{
			ID:            "driver-330",
			FirstName:     "Mohamed",
			LastName:      "Bille",
			Email:         "bille2@gmail.com",
			Phone:         "612-388-5070",
			LicenseNumber: "DL12345678",
			LicenseExpiry: "2027-12-31",
			Status:        domain.DriverStatusActive,
		},
		{
			ID:            "driver-450",
			FirstName:     "Hussein",
			LastName:      "Hindi",
			Email:         "marqaatiga@gmail.com",
			Phone:         "(555) 987-6543",
			LicenseNumber: "DL87654321",
			LicenseExpiry: "2027-10-15",
			Status:        domain.DriverStatusOnTrip,
		},
	})
}
