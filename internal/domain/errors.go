package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidation signals malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID signals a syntactically invalid document identifier.
	ErrInvalidID = errors.New("invalid id format")
	// ErrVendorNotFound signals a reference to a vendor that does not exist.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrStoreUnavailable signals that the document store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every invalid field of an input record,
// not just the first one encountered.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
