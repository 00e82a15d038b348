package domain

import "errors"

// Common domain errors used across the demo applications.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is returned when a parsed record has too few fields or
	// an empty field after trimming.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidFormat is returned when data is not in the expected format,
	// such as a non-numeric ID or an out-of-range score.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNegativeQuantity is returned when a quantity would become negative.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)
