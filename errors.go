package factory

import (
	"errors"
	"fmt"
)

// CreateError represents a backing-store failure during a factory create.
// It is the only error kind factories introduce: every failure wraps the
// underlying driver error so the test author can diagnose the store-level
// cause.
type CreateError struct {
	Entity string // Entity label being created
	Err    error  // Underlying store error
}

// Error returns the error string.
func (e *CreateError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("factory: creating %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("factory: create: %v", e.Err)
}

// Unwrap returns the underlying store error.
func (e *CreateError) Unwrap() error {
	return e.Err
}

// NewCreateError returns a new CreateError for the given entity label.
func NewCreateError(entity string, err error) *CreateError {
	return &CreateError{Entity: entity, Err: err}
}

// IsCreateError returns true if the error is a CreateError.
func IsCreateError(err error) bool {
	if err == nil {
		return false
	}
	var e *CreateError
	return errors.As(err, &e)
}

// ConstraintError represents a database constraint violation surfaced by a
// factory create: a unique, foreign-key or check constraint rejected the
// insert. The underlying driver error is preserved.
type ConstraintError struct {
	entity string
	wrap   error
}

// Error returns the error string.
func (e ConstraintError) Error() string {
	return fmt.Sprintf("factory: creating %s: constraint failed: %v", e.entity, e.wrap)
}

// Unwrap returns the underlying driver error.
func (e ConstraintError) Unwrap() error {
	return e.wrap
}

// Entity returns the entity label being created.
func (e ConstraintError) Entity() string {
	return e.entity
}

// NewConstraintError returns a new ConstraintError for the given entity label.
func NewConstraintError(entity string, wrap error) error {
	return ConstraintError{entity: entity, wrap: wrap}
}

// IsConstraintError returns true if the error is a ConstraintError.
func IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var e ConstraintError
	return errors.As(err, &e)
}
