package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input: a missing required field, an
	// out-of-range priority or a config file that does not match the schema.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates an image, service or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous indicates more than one candidate matched where exactly one was needed.
	ErrAmbiguous = errors.New("ambiguous")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)
