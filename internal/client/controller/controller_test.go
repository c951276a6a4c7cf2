package controller

import (
	"context"
	"errors"
	"testing"

	"loadharbour/internal/client/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fakeAPI struct {
	items     []row
	listCalls int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeAPI) List(ctx context.Context, query string) (gateway.List[row], error) {
	f.listCalls++
	if f.listErr != nil {
		return gateway.List[row]{}, f.listErr
	}
	return gateway.List[row]{Items: f.items, Total: len(f.items)}, nil
}

func (f *fakeAPI) Create(ctx context.Context, item row) (row, error) {
	if f.createErr != nil {
		return row{}, f.createErr
	}
	item.ID = "r-new"
	f.items = append([]row{item}, f.items...)
	return item, nil
}

func (f *fakeAPI) Update(ctx context.Context, id string, patch any) (row, error) {
	if f.updateErr != nil {
		return row{}, f.updateErr
	}
	return row{ID: id}, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from State
		to   State
		want bool
	}{
		{"IdleToLoading", LoadIdle, LoadLoading, true},
		{"IdleSkipsToLoaded", LoadIdle, LoadLoaded, false},
		{"LoadingToLoaded", LoadLoading, LoadLoaded, true},
		{"LoadingToFailed", LoadLoading, LoadFailed, true},
		{"FailedRetries", LoadFailed, LoadLoading, true},
		{"LoadedRefreshes", LoadLoaded, LoadLoading, true},
		{"SelfLoop", LoadLoaded, LoadLoaded, true},
		{"ClosedToCreating", ModalClosed, ModalCreating, true},
		{"ClosedToSubmitting", ModalClosed, ModalSubmitting, false},
		{"SubmittingBackToEditing", ModalSubmitting, ModalEditing, true},
		{"ConfirmToRunning", DeleteConfirm, DeleteRunning, true},
		{"ClosedToRunning", DeleteClosed, DeleteRunning, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestController_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := &fakeAPI{items: []row{{ID: "r-1"}, {ID: "r-2"}}}
		ctrl := New[row](api)

		require.NoError(t, ctrl.Fetch(ctx))

		load, _, _ := ctrl.States()
		assert.Equal(t, LoadLoaded, load)
		items, total := ctrl.Items()
		assert.Len(t, items, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("FailureThenRetry", func(t *testing.T) {
		api := &fakeAPI{items: []row{{ID: "r-1"}}, listErr: errors.New("boom")}
		ctrl := New[row](api)

		err := ctrl.Fetch(ctx)
		assert.Error(t, err)
		load, _, _ := ctrl.States()
		assert.Equal(t, LoadFailed, load)
		assert.Error(t, ctrl.Err())

		api.listErr = nil
		require.NoError(t, ctrl.Fetch(ctx))
		load, _, _ = ctrl.States()
		assert.Equal(t, LoadLoaded, load)
		assert.NoError(t, ctrl.Err())
	})

	t.Run("StaleResponseDiscarded", func(t *testing.T) {
		api := &fakeAPI{}
		ctrl := New[row](api)

		genOld, _, err := ctrl.beginFetch()
		require.NoError(t, err)
		genNew, _, err := ctrl.beginFetch()
		require.NoError(t, err)
		require.Greater(t, genNew, genOld)

		// Newer response lands first.
		require.NoError(t, ctrl.finishFetch(genNew, gateway.List[row]{
			Items: []row{{ID: "fresh"}}, Total: 1,
		}, nil))

		// The older response arrives late and must not overwrite.
		require.NoError(t, ctrl.finishFetch(genOld, gateway.List[row]{
			Items: []row{{ID: "stale-1"}, {ID: "stale-2"}}, Total: 2,
		}, nil))

		items, total := ctrl.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "fresh", items[0].ID)
		assert.Equal(t, 1, total)
	})

	t.Run("StaleErrorDiscarded", func(t *testing.T) {
		api := &fakeAPI{}
		ctrl := New[row](api)

		genOld, _, err := ctrl.beginFetch()
		require.NoError(t, err)
		genNew, _, err := ctrl.beginFetch()
		require.NoError(t, err)

		require.NoError(t, ctrl.finishFetch(genNew, gateway.List[row]{Items: []row{{ID: "fresh"}}, Total: 1}, nil))
		require.NoError(t, ctrl.finishFetch(genOld, gateway.List[row]{}, errors.New("timeout")))

		load, _, _ := ctrl.States()
		assert.Equal(t, LoadLoaded, load)
		assert.NoError(t, ctrl.Err())
	})
}

func TestController_Modal(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateSuccessRefetches", func(t *testing.T) {
		api := &fakeAPI{}
		ctrl := New[row](api)
		require.NoError(t, ctrl.Fetch(ctx))
		fetchesBefore := api.listCalls

		require.NoError(t, ctrl.OpenCreate())
		require.NoError(t, ctrl.SubmitCreate(ctx, row{Name: "new row"}))

		_, modal, _ := ctrl.States()
		assert.Equal(t, ModalClosed, modal)
		assert.Equal(t, fetchesBefore+1, api.listCalls)
		items, _ := ctrl.Items()
		require.NotEmpty(t, items)
		assert.Equal(t, "r-new", items[0].ID)
	})

	t.Run("CreateFailureRetainsDraft", func(t *testing.T) {
		api := &fakeAPI{createErr: errors.New("validation failed")}
		ctrl := New[row](api)

		require.NoError(t, ctrl.OpenCreate())
		err := ctrl.SubmitCreate(ctx, row{Name: "bad row"})
		assert.Error(t, err)

		_, modal, _ := ctrl.States()
		assert.Equal(t, ModalCreating, modal)
		draft, ok := ctrl.Draft().(row)
		require.True(t, ok)
		assert.Equal(t, "bad row", draft.Name)
		assert.Error(t, ctrl.Err())

		// Close drops the draft and the error.
		require.NoError(t, ctrl.CloseModal())
		assert.Nil(t, ctrl.Draft())
		assert.NoError(t, ctrl.Err())
	})

	t.Run("EditFailureReturnsToEditing", func(t *testing.T) {
		api := &fakeAPI{updateErr: errors.New("conflict")}
		ctrl := New[row](api)

		require.NoError(t, ctrl.OpenEdit("r-1"))
		err := ctrl.SubmitEdit(ctx, map[string]string{"name": "renamed"})
		assert.Error(t, err)

		_, modal, _ := ctrl.States()
		assert.Equal(t, ModalEditing, modal)
	})

	t.Run("SubmitWithoutOpenRejected", func(t *testing.T) {
		ctrl := New[row](&fakeAPI{})
		err := ctrl.SubmitCreate(ctx, row{})
		assert.Error(t, err)
	})

	t.Run("DoubleOpenRejected", func(t *testing.T) {
		ctrl := New[row](&fakeAPI{})
		require.NoError(t, ctrl.OpenCreate())
		assert.Error(t, ctrl.OpenEdit("r-1"))
	})
}

func TestController_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("ConfirmedDeleteRefetches", func(t *testing.T) {
		api := &fakeAPI{items: []row{{ID: "r-1"}}}
		ctrl := New[row](api)
		require.NoError(t, ctrl.Fetch(ctx))
		fetchesBefore := api.listCalls

		require.NoError(t, ctrl.RequestDelete("r-1"))
		_, _, del := ctrl.States()
		assert.Equal(t, DeleteConfirm, del)

		require.NoError(t, ctrl.ConfirmDelete(ctx))
		_, _, del = ctrl.States()
		assert.Equal(t, DeleteClosed, del)
		assert.Equal(t, fetchesBefore+1, api.listCalls)
	})

	t.Run("Cancel", func(t *testing.T) {
		ctrl := New[row](&fakeAPI{})
		require.NoError(t, ctrl.RequestDelete("r-1"))
		require.NoError(t, ctrl.CancelDelete())
		_, _, del := ctrl.States()
		assert.Equal(t, DeleteClosed, del)
	})

	t.Run("FailureSurfacesError", func(t *testing.T) {
		api := &fakeAPI{deleteErr: errors.New("referenced by a load")}
		ctrl := New[row](api)

		require.NoError(t, ctrl.RequestDelete("r-1"))
		err := ctrl.ConfirmDelete(ctx)
		assert.Error(t, err)
		_, _, del := ctrl.States()
		assert.Equal(t, DeleteClosed, del)
		assert.Error(t, ctrl.Err())
	})

	t.Run("ConfirmWithoutRequestRejected", func(t *testing.T) {
		ctrl := New[row](&fakeAPI{})
		assert.Error(t, ctrl.ConfirmDelete(ctx))
	})
}
