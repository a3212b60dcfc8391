package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed matches every *ValidationError with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnexpectedType is returned by As when a validator produced a value
	// of a different Go type than the caller asked for.
	ErrUnexpectedType = errors.New("validator returned unexpected type")
)
