package adapters

import (
	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/auth/domain"
)

// NewMemoryRepository creates an in-memory user store with
// case-insensitive unique emails.
func NewMemoryRepository() *storage.Store[domain.User] {
	return storage.New(storage.Config[domain.User]{
		ID:     func(u domain.User) string { return u.ID },
		WithID: func(u domain.User, id string) domain.User { u.ID = id; return u },
		UniqueKeys: []storage.UniqueKey[domain.User]{
			{Field: "Email", Value: func(u domain.User) string { return u.Email }},
		},
	})
}
