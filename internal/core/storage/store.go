// Package storage provides a generic in-memory record store.
//
// Every feature constructs its own Store instance, so there is no shared
// global state: tests and multiple server instances hold independent
// collections. The store owns ordering (most recent first) and the
// uniqueness checks for declared unique keys; field-level validation
// belongs to the feature services.
package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// UniqueKey declares a field whose value must be distinct across all
// records of a collection. Empty values are exempt.
type UniqueKey[E any] struct {
	// Field is the user-facing field name used in conflict messages.
	Field string
	// Value extracts the key value from a record.
	Value func(E) string
}

// Config wires the accessors a Store needs to manage records of type E.
type Config[E any] struct {
	// ID extracts the identifier from a record.
	ID func(E) string
	// WithID returns a copy of the record with the identifier set.
	WithID func(E, string) E
	// UniqueKeys lists the uniqueness-constrained fields.
	UniqueKeys []UniqueKey[E]
	// NewID manufactures identifiers for created records. Defaults to UUIDs.
	NewID func() string
}

// Store is a mutex-guarded in-memory collection of E.
type Store[E any] struct {
	mu    sync.RWMutex
	items []E
	cfg   Config[E]
}

// New creates an empty Store.
func New[E any](cfg Config[E]) *Store[E] {
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	return &Store[E]{cfg: cfg}
}

// Seed replaces the collection contents. Intended for demo data and tests.
func (s *Store[E]) Seed(items []E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]E(nil), items...)
}

// List returns a snapshot copy of the collection, most recent first.
func (s *Store[E]) List(ctx context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]E(nil), s.items...), nil
}

// Get returns the record with the given id.
func (s *Store[E]) Get(ctx context.Context, id string) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.cfg.ID(item) == id {
			return item, nil
		}
	}
	var zero E
	return zero, ErrNotFound
}

// Find returns the first record matching the predicate.
func (s *Store[E]) Find(ctx context.Context, match func(E) bool) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if match(item) {
			return item, nil
		}
	}
	var zero E
	return zero, ErrNotFound
}

// Any reports whether any record matches the predicate.
func (s *Store[E]) Any(ctx context.Context, match func(E) bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if match(item) {
			return true, nil
		}
	}
	return false, nil
}

// Create assigns a fresh id and prepends the record to the collection.
// Returns a ConflictError when a unique key collides with an existing record.
func (s *Store[E]) Create(ctx context.Context, item E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero E
	if err := s.checkUnique(item, ""); err != nil {
		return zero, err
	}

	item = s.cfg.WithID(item, s.cfg.NewID())
	s.items = append([]E{item}, s.items...)
	return item, nil
}

// Update replaces the record with the given id, keeping its position.
// The caller supplies the already-merged record; unique keys are
// re-checked against every other record.
func (s *Store[E]) Update(ctx context.Context, id string, merged E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero E
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, ErrNotFound
	}

	if err := s.checkUnique(merged, id); err != nil {
		return zero, err
	}

	merged = s.cfg.WithID(merged, id)
	s.items[idx] = merged
	return merged, nil
}

// Delete removes the record with the given id.
func (s *Store[E]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// Count returns the number of stored records.
func (s *Store[E]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// indexOf must be called with the lock held.
func (s *Store[E]) indexOf(id string) int {
	for i, item := range s.items {
		if s.cfg.ID(item) == id {
			return i
		}
	}
	return -1
}

// checkUnique must be called with the lock held. excludeID skips the
// record being updated so it does not collide with itself.
func (s *Store[E]) checkUnique(candidate E, excludeID string) error {
	for _, key := range s.cfg.UniqueKeys {
		want := key.Value(candidate)
		if want == "" {
			continue
		}
		for _, item := range s.items {
			if excludeID != "" && s.cfg.ID(item) == excludeID {
				continue
			}
			if strings.EqualFold(key.Value(item), want) {
				return &ConflictError{Field: key.Field}
			}
		}
	}
	return nil
}
