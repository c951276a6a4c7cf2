package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested record id does not exist.
var ErrNotFound = errors.New("record not found")

// ConflictError is returned when a unique field collides with an existing record.
type ConflictError struct {
	// Field is the human-readable name of the colliding field (e.g. "VIN").
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}
