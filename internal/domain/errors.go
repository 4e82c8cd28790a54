package domain

import "errors"

// Sentinel errors shared by stores, services and transport.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// ValidationError rejects one input field. The API reports a single error
// string per request, so only the first failing field is carried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Public returns the client-facing message.
func (e *ValidationError) Public() string {
	if e.Message == "" {
		return ErrValidation.Error()
	}
	return e.Message
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RejectedError means the store refused a write because of the data it
// carried, such as a check constraint or an over-long value. Detail is the
// store's own message. It always matches ErrValidation; Err keeps the driver
// error when there is one.
type RejectedError struct {
	Entity string
	Code   string
	Detail string
	Err    error
}

func (e *RejectedError) Error() string {
	return e.Entity + " rejected (" + e.Code + "): " + e.Detail
}

func (e *RejectedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}
