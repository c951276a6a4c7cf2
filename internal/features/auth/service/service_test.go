package service

import (
	"context"
	"testing"
	"time"

	"loadharbour/internal/core/cache"
	"loadharbour/internal/core/storage"
	"loadharbour/internal/core/validate"
	"loadharbour/internal/features/auth/adapters"
	"loadharbour/internal/features/auth/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreds() domain.Credentials {
	return domain.Credentials{
		Email:    "dispatch@loadharbour.io",
		Password: "hunter22",
		Name:     "Dispatch Desk",
		Role:     domain.RoleDispatcher,
	}
}

func newService(t *testing.T) (*AuthServiceImpl, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	sessions, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	return NewAuthService(adapters.NewMemoryRepository(), sessions, 8*time.Hour), mr
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newService(t)

		user, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "dispatch@loadharbour.io", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "hunter22", user.PasswordHash)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc, _ := newService(t)

		creds := validCreds()
		creds.Password = "abc"

		_, err := svc.Register(ctx, creds)
		var verrs validate.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Password must be at least 6 characters", verrs["password"])
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)

		other := validCreds()
		other.Email = "DISPATCH@loadharbour.io"
		_, err = svc.Register(ctx, other)
		var conflict *storage.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Email", conflict.Field)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newService(t)

		registered, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)

		session, err := svc.Login(ctx, domain.Credentials{
			Email:    "Dispatch@LoadHarbour.io",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, registered.ID, session.User.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)

		_, err = svc.Login(ctx, domain.Credentials{
			Email:    "dispatch@loadharbour.io",
			Password: "wrong-pass",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Login(ctx, domain.Credentials{
			Email:    "nobody@loadharbour.io",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Sessions(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolveRoundTrip", func(t *testing.T) {
		svc, _ := newService(t)

		registered, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)

		session, err := svc.Login(ctx, domain.Credentials{
			Email:    validCreds().Email,
			Password: validCreds().Password,
		})
		require.NoError(t, err)

		user, err := svc.Resolve(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("LogoutInvalidates", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)

		session, err := svc.Login(ctx, domain.Credentials{
			Email:    validCreds().Email,
			Password: validCreds().Password,
		})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, session.Token))

		_, err = svc.Resolve(ctx, session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("TokenExpires", func(t *testing.T) {
		svc, mr := newService(t)
		svc.tokenTTL = time.Minute

		_, err := svc.Register(ctx, validCreds())
		require.NoError(t, err)

		session, err := svc.Login(ctx, domain.Credentials{
			Email:    validCreds().Email,
			Password: validCreds().Password,
		})
		require.NoError(t, err)

		mr.FastForward(2 * time.Minute)

		_, err = svc.Resolve(ctx, session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
