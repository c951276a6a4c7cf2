package ports

import (
	"context"

	"loadharbour/internal/features/auth/domain"
)

// AuthService defines the primary port for account operations.
type AuthService interface {
	Register(ctx context.Context, creds domain.Credentials) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (domain.User, error)
}

// UserRepository defines the secondary port for account storage.
type UserRepository interface {
	Get(ctx context.Context, id string) (domain.User, error)
	Find(ctx context.Context, match func(domain.User) bool) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}
