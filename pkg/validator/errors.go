package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidLengthBounds is returned when a Length validator is configured with unusable bounds.
	ErrInvalidLengthBounds = errors.New("invalid length bounds")
)
