package service

import (
	"context"
	"errors"
	"testing"

	"loadharbour/internal/core/storage"
	"loadharbour/internal/core/validate"
	"loadharbour/internal/features/trucks/adapters"
	"loadharbour/internal/features/trucks/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTruck() domain.Truck {
	return domain.Truck{
		UnitNo:  "TRK-001",
		PlateNo: "ABC123",
		VIN:     "1HGCM82633A123456",
		Make:    "Volvo",
		Model:   "VNL 860",
		Year:    "2022",
		Status:  domain.TruckStatusActive,
	}
}

func newService(loadRef func(ctx context.Context, id string) (bool, error)) (*TruckServiceImpl, *storage.Store[domain.Truck]) {
	repo := adapters.NewMemoryRepository()
	return NewTruckService(repo, loadRef), repo
}

func TestTruckService_Create(t *testing.T) {
	svc, repo := newService(nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		created, err := svc.Create(ctx, validTruck())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "TRK-001", created.UnitNo)
	})

	t.Run("DuplicateVIN", func(t *testing.T) {
		dup := validTruck()
		dup.UnitNo = "TRK-002"
		dup.PlateNo = "XYZ789"

		_, err := svc.Create(ctx, dup)
		var conflict *storage.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "VIN", conflict.Field)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		bad := validTruck()
		bad.VIN = "SHORT"

		_, err := svc.Create(ctx, bad)
		var verrs validate.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "VIN must be exactly 17 characters", verrs["vin"])
		assert.Equal(t, 1, repo.Count())
	})
}

func TestTruckService_Update(t *testing.T) {
	svc, repo := newService(nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validTruck())
	require.NoError(t, err)

	t.Run("PartialMerge", func(t *testing.T) {
		status := domain.TruckStatusMaintenance
		updated, err := svc.Update(ctx, created.ID, domain.TruckPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.TruckStatusMaintenance, updated.Status)
		// Untouched fields survive the merge.
		assert.Equal(t, created.VIN, updated.VIN)
		assert.Equal(t, created.UnitNo, updated.UnitNo)
	})

	t.Run("EmptyPatchRoundTrips", func(t *testing.T) {
		before, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)

		after, err := svc.Update(ctx, created.ID, domain.TruckPatch{})
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("UnknownID", func(t *testing.T) {
		count := repo.Count()
		_, err := svc.Update(ctx, "missing", domain.TruckPatch{})
		assert.True(t, errors.Is(err, storage.ErrNotFound))
		assert.Equal(t, count, repo.Count())
	})

	t.Run("InvalidPatchValue", func(t *testing.T) {
		year := "1776"
		_, err := svc.Update(ctx, created.ID, domain.TruckPatch{Year: &year})
		var verrs validate.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Invalid year", verrs["year"])
	})
}

func TestTruckService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newService(nil)
		ctx := context.Background()

		created, err := svc.Create(ctx, validTruck())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("UnknownID", func(t *testing.T) {
		svc, _ := newService(nil)
		err := svc.Delete(context.Background(), "missing")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("BlockedWhileReferenced", func(t *testing.T) {
		svc, repo := newService(func(ctx context.Context, id string) (bool, error) {
			return true, nil
		})
		ctx := context.Background()

		created, err := svc.Create(ctx, validTruck())
		require.NoError(t, err)

		err = svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, ErrTruckInUse)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("RefCheckError", func(t *testing.T) {
		svc, _ := newService(func(ctx context.Context, id string) (bool, error) {
			return false, errors.New("loads unavailable")
		})
		ctx := context.Background()

		created, err := svc.Create(ctx, validTruck())
		require.NoError(t, err)

		err = svc.Delete(ctx, created.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrTruckInUse)
	})
}
