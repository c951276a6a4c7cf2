package service

import (
	"context"
	"errors"
	"testing"

	"loadharbour/internal/core/storage"
	"loadharbour/internal/core/validate"
	"loadharbour/internal/features/drivers/adapters"
	"loadharbour/internal/features/drivers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDriver() domain.Driver {
	return domain.Driver{
		FirstName:     "Mohamed",
		LastName:      "Bille",
		Email:         "bille2@gmail.com",
		Phone:         "612-388-5070",
		LicenseNumber: "DL12345678",
		LicenseExpiry: "2099-12-31",
		Status:        domain.DriverStatusActive,
	}
}

func TestDriverService_Create(t *testing.T) {
	repo := adapters.NewMemoryRepository()
	svc := NewDriverService(repo, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		created, err := svc.Create(ctx, validDriver())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("ExpiredLicense", func(t *testing.T) {
		bad := validDriver()
		bad.LicenseExpiry = "2020-01-01"

		_, err := svc.Create(ctx, bad)
		var verrs validate.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "License expiry date must be in the future", verrs["licenseExpiry"])
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("BadPhone", func(t *testing.T) {
		bad := validDriver()
		bad.Phone = "call me maybe"

		_, err := svc.Create(ctx, bad)
		var verrs validate.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Invalid phone number format", verrs["phone"])
	})
}

func TestDriverService_Update(t *testing.T) {
	repo := adapters.NewMemoryRepository()
	svc := NewDriverService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validDriver())
	require.NoError(t, err)

	t.Run("PartialMerge", func(t *testing.T) {
		status := domain.DriverStatusOffDuty
		updated, err := svc.Update(ctx, created.ID, domain.DriverPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.DriverStatusOffDuty, updated.Status)
		assert.Equal(t, created.Email, updated.Email)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", domain.DriverPatch{})
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestDriverService_Delete(t *testing.T) {
	t.Run("BlockedWhileReferenced", func(t *testing.T) {
		repo := adapters.NewMemoryRepository()
		svc := NewDriverService(repo, func(ctx context.Context, id string) (bool, error) {
			return true, nil
		})
		ctx := context.Background()

		created, err := svc.Create(ctx, validDriver())
		require.NoError(t, err)

		err = svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, ErrDriverInUse)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("Unreferenced", func(t *testing.T) {
		repo := adapters.NewMemoryRepository()
		svc := NewDriverService(repo, func(ctx context.Context, id string) (bool, error) {
			return false, nil
		})
		ctx := context.Background()

		created, err := svc.Create(ctx, validDriver())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))
		assert.Equal(t, 0, repo.Count())
	})
}
