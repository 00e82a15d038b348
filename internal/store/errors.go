package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all repository instances.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// repository. Entity-specific variants wrap this error so callers can
	// match either the generic or the specific condition with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateKey is returned when an insert would overwrite an entity
	// that already exists under the same key.
	ErrDuplicateKey = errors.New("entity already exists")

	// ErrInvalidValue is returned when a value fails domain validation before
	// being stored (e.g., a negative quantity). Check the wrapped error for
	// specific validation details.
	ErrInvalidValue = errors.New("invalid value")

	// Entity-specific "not found" errors

	// ErrProductNotFound indicates that the requested warehouse product does
	// not exist in the repository.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)

	// ErrPatientNotFound indicates that the requested patient does not exist
	// in the repository.
	ErrPatientNotFound = fmt.Errorf("%w: patient", ErrNotFound)

	// ErrAccountNotFound indicates that the requested account does not exist
	// in the repository.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrProductExists indicates that a product with the given ID already exists.
	ErrProductExists = fmt.Errorf("%w: product", ErrDuplicateKey)

	// ErrPatientExists indicates that a patient with the given MRN already exists.
	ErrPatientExists = fmt.Errorf("%w: patient", ErrDuplicateKey)

	// ErrAccountExists indicates that an account with the given number already exists.
	ErrAccountExists = fmt.Errorf("%w: account", ErrDuplicateKey)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific variants,
// which wrap it.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKeyError checks if the error is any kind of "duplicate key" error.
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsInvalidValueError checks if the error reports a value that failed
// domain validation.
func IsInvalidValueError(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// RepositoryError is a custom error type for repository-specific errors with
// additional context.
type RepositoryError struct {
	Entity    string // The entity type (e.g., "product", "account")
	Operation string // The operation that failed (e.g., "insert", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for RepositoryError.
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new RepositoryError with the given entity,
// operation, message, and wrapped error.
func NewRepositoryError(entity, operation, message string, err error) *RepositoryError {
	return &RepositoryError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
