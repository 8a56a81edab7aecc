package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentWrite is returned when an append loses the race for the
	// next sequence number; the caller should reload and retry
	ErrConcurrentWrite = errors.New("concurrent write detected")

	// ErrAlreadyResponded is returned when a UI request already left pending
	ErrAlreadyResponded = errors.New("ui request already responded")

	// ErrNotCancellable is returned when cancelling a UI request that is not pending
	ErrNotCancellable = errors.New("ui request not cancellable")

	// ErrTaskTerminal is returned when appending to a task in a terminal status
	ErrTaskTerminal = errors.New("task is in a terminal status")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
