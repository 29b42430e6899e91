package store

import (
	"errors"
	"fmt"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyText     = errors.New("task text cannot be empty")
	ErrTextTooLong   = errors.New("task text cannot exceed 200 characters")
	ErrInvalidFilter = errors.New(`filter must be one of "all", "completed", "pending"`)

	// Lookup errors
	ErrTaskNotFound = errors.New("task not found")
)

// PersistenceError reports a storage failure. It is always recoverable: the
// in-memory mutation has already been applied and the store stays usable,
// only durability for that operation is lost.
type PersistenceError struct {
	Op  string // the operation that triggered the save ("add", "toggle", ...)
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist after %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is one of the validation errors
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrTextTooLong) ||
		errors.Is(err, ErrInvalidFilter)
}

// IsNotFound reports whether err means the referenced task does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}

// IsPersistence reports whether err is a recoverable storage warning
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
