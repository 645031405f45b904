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

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrForbidden is returned when the principal may not act on the entity
	ErrForbidden = errors.New("operation not allowed for this principal")

	// ErrInvalidTransition is returned on a disallowed state machine move
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlotTaken is returned when a reservation slot is already held
	ErrSlotTaken = errors.New("slot already reserved")

	// ErrNoTablesAvailable is returned when no table fits a requested slot
	ErrNoTablesAvailable = errors.New("no tables available for slot")

	// ErrInsufficientStock is returned when an order exceeds remaining stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart is returned when confirming a cart with no lines
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCancelDeadlinePassed is returned when the cancellation window is over
	ErrCancelDeadlinePassed = errors.New("cancellation deadline passed")

	// ErrSessionLocked is returned when a human holds the conversation
	ErrSessionLocked = errors.New("session is human locked")

	// ErrAddonInactive is returned when a tenant addon gate is closed
	ErrAddonInactive = errors.New("addon inactive for business")
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
