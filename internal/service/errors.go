package service

import "fmt"

// ServiceError wraps errors from a demo service with context about which
// demo and operation failed.
type ServiceError struct {
	// Demo is the demo the error came from (e.g., "inventory", "finance").
	Demo string
	// Operation is the operation that failed (e.g., "restore_log", "parse_records").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s demo %s failed: %s: %v", e.Demo, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s demo %s failed: %s", e.Demo, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(demo, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Demo:      demo,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
