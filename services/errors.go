package services

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	// ErrInvalidTransition is returned when an appointment or leave action is
	// attempted from a status that does not satisfy its precondition. The
	// record is never mutated in that case.
	ErrInvalidTransition = errors.New("action not allowed for current status")

	// ErrNotFound is returned when a referenced record does not exist in the
	// caller's clinic.
	ErrNotFound = errors.New("record not found")
)

// ValidationError reports the first missing or invalid field of a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
