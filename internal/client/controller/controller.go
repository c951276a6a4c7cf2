package controller

import (
	"context"
	"fmt"
	"sync"

	"loadharbour/internal/client/gateway"
)

// State is a node in one of the page's three sub-machines.
type State string

// Collection load states.
const (
	LoadIdle    State = "idle"
	LoadLoading State = "loading"
	LoadLoaded  State = "loaded"
	LoadFailed  State = "load_failed"
)

// Form modal states.
const (
	ModalClosed     State = "modal_closed"
	ModalCreating   State = "modal_creating"
	ModalEditing    State = "modal_editing"
	ModalSubmitting State = "modal_submitting"
)

// Delete confirmation states.
const (
	DeleteClosed  State = "delete_closed"
	DeleteConfirm State = "delete_confirm"
	DeleteRunning State = "delete_running"
)

// allowTransition is the directed graph of legal moves, one entry per
// sub-machine node.
var allowTransition = map[State][]State{
	LoadIdle:    {LoadLoading},
	LoadLoading: {LoadLoaded, LoadFailed},
	LoadLoaded:  {LoadLoading},
	LoadFailed:  {LoadLoading},

	ModalClosed:     {ModalCreating, ModalEditing},
	ModalCreating:   {ModalSubmitting, ModalClosed},
	ModalEditing:    {ModalSubmitting, ModalClosed},
	ModalSubmitting: {ModalClosed, ModalCreating, ModalEditing},

	DeleteClosed:  {DeleteConfirm},
	DeleteConfirm: {DeleteRunning, DeleteClosed},
	DeleteRunning: {DeleteClosed},
}

// CanTransition reports whether from -> to is a legal move. Staying
// put is always legal.
func CanTransition(from, to State) bool {
	if from == to {
		return true
	}
	for _, s := range allowTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// API is the slice of the gateway a page needs. *gateway.Resource[E]
// satisfies it.
type API[E any] interface {
	List(ctx context.Context, query string) (gateway.List[E], error)
	Create(ctx context.Context, item E) (E, error)
	Update(ctx context.Context, id string, patch any) (E, error)
	Delete(ctx context.Context, id string) error
}

// Controller drives one CRUD page: the collection, the form modal,
// and the delete confirmation. Every fetch carries a monotonically
// increasing generation; a response older than the last applied one
// is discarded so a slow request cannot overwrite a fresh list.
type Controller[E any] struct {
	api API[E]

	mu          sync.Mutex
	loadState   State
	modalState  State
	deleteState State

	items []E
	total int

	query     string
	editingID string
	deleteID  string
	draft     any
	lastErr   error

	nextGen    uint64
	appliedGen uint64
}

// New creates a Controller in its initial state.
func New[E any](api API[E]) *Controller[E] {
	return &Controller[E]{
		api:         api,
		loadState:   LoadIdle,
		modalState:  ModalClosed,
		deleteState: DeleteClosed,
	}
}

// States returns the current node of each sub-machine.
func (c *Controller[E]) States() (load, modal, del State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadState, c.modalState, c.deleteState
}

// Items returns the last applied collection snapshot.
func (c *Controller[E]) Items() ([]E, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items, c.total
}

// Err returns the most recent failure, if any.
func (c *Controller[E]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Draft returns the retained form body after a failed submit.
func (c *Controller[E]) Draft() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetQuery stores the search/filter query used by subsequent fetches.
func (c *Controller[E]) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

// Fetch loads the collection. Concurrent fetches race safely: only
// the newest generation's result is applied.
func (c *Controller[E]) Fetch(ctx context.Context) error {
	gen, query, err := c.beginFetch()
	if err != nil {
		return err
	}

	out, listErr := c.api.List(ctx, query)
	return c.finishFetch(gen, out, listErr)
}

// beginFetch moves to Loading and claims the next generation.
func (c *Controller[E]) beginFetch() (uint64, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanTransition(c.loadState, LoadLoading) {
		return 0, "", fmt.Errorf("controller: cannot fetch from state %s", c.loadState)
	}
	c.loadState = LoadLoading
	c.nextGen++
	return c.nextGen, c.query, nil
}

// finishFetch applies a fetch result unless a newer one already landed.
func (c *Controller[E]) finishFetch(gen uint64, out gateway.List[E], err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen <= c.appliedGen {
		// Stale response, a newer fetch already applied.
		return nil
	}
	c.appliedGen = gen

	if err != nil {
		c.loadState = LoadFailed
		c.lastErr = err
		return err
	}

	c.loadState = LoadLoaded
	c.lastErr = nil
	c.items = out.Items
	c.total = out.Total
	return nil
}

// OpenCreate opens the form modal for a new record.
func (c *Controller[E]) OpenCreate() error {
	return c.moveModal(ModalCreating, "")
}

// OpenEdit opens the form modal over an existing record.
func (c *Controller[E]) OpenEdit(id string) error {
	return c.moveModal(ModalEditing, id)
}

// CloseModal dismisses the form, dropping any retained draft.
func (c *Controller[E]) CloseModal() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanTransition(c.modalState, ModalClosed) {
		return fmt.Errorf("controller: cannot close modal from state %s", c.modalState)
	}
	c.modalState = ModalClosed
	c.editingID = ""
	c.draft = nil
	c.lastErr = nil
	return nil
}

func (c *Controller[E]) moveModal(to State, editingID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanTransition(c.modalState, to) {
		return fmt.Errorf("controller: cannot open modal from state %s", c.modalState)
	}
	c.modalState = to
	c.editingID = editingID
	c.draft = nil
	c.lastErr = nil
	return nil
}

// SubmitCreate posts the draft. Success closes the modal and
// re-fetches; failure returns to Creating with the draft retained.
func (c *Controller[E]) SubmitCreate(ctx context.Context, item E) error {
	if err := c.enterSubmitting(ModalCreating, item); err != nil {
		return err
	}

	_, err := c.api.Create(ctx, item)
	return c.finishSubmit(ctx, ModalCreating, err)
}

// SubmitEdit sends the patch for the record under edit. Success closes
// the modal and re-fetches; failure returns to Editing with the draft
// retained.
func (c *Controller[E]) SubmitEdit(ctx context.Context, patch any) error {
	if err := c.enterSubmitting(ModalEditing, patch); err != nil {
		return err
	}

	c.mu.Lock()
	id := c.editingID
	c.mu.Unlock()

	_, err := c.api.Update(ctx, id, patch)
	return c.finishSubmit(ctx, ModalEditing, err)
}

func (c *Controller[E]) enterSubmitting(from State, draft any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.modalState != from {
		return fmt.Errorf("controller: cannot submit from state %s", c.modalState)
	}
	c.modalState = ModalSubmitting
	c.draft = draft
	return nil
}

func (c *Controller[E]) finishSubmit(ctx context.Context, backTo State, err error) error {
	c.mu.Lock()
	if err != nil {
		c.modalState = backTo
		c.lastErr = err
		c.mu.Unlock()
		return err
	}
	c.modalState = ModalClosed
	c.editingID = ""
	c.draft = nil
	c.lastErr = nil
	c.mu.Unlock()

	return c.Fetch(ctx)
}

// RequestDelete opens the confirmation for the given record.
func (c *Controller[E]) RequestDelete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanTransition(c.deleteState, DeleteConfirm) {
		return fmt.Errorf("controller: cannot request delete from state %s", c.deleteState)
	}
	c.deleteState = DeleteConfirm
	c.deleteID = id
	return nil
}

// CancelDelete dismisses the confirmation.
func (c *Controller[E]) CancelDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deleteState != DeleteConfirm {
		return fmt.Errorf("controller: cannot cancel delete from state %s", c.deleteState)
	}
	c.deleteState = DeleteClosed
	c.deleteID = ""
	return nil
}

// ConfirmDelete runs the pending delete. Success re-fetches; failure
// surfaces the error with the confirmation closed either way.
func (c *Controller[E]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.deleteState != DeleteConfirm {
		c.mu.Unlock()
		return fmt.Errorf("controller: no delete pending")
	}
	c.deleteState = DeleteRunning
	id := c.deleteID
	c.mu.Unlock()

	err := c.api.Delete(ctx, id)

	c.mu.Lock()
	c.deleteState = DeleteClosed
	c.deleteID = ""
	if err != nil {
		c.lastErr = err
		c.mu.Unlock()
		return err
	}
	c.lastErr = nil
	c.mu.Unlock()

	return c.Fetch(ctx)
}
