// Package errors contains the shared domain errors of the application.
//
// These errors are produced by the service, repository and storage layers
// and mapped to HTTP statuses in the api layer.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Input data is invalid (empty fields, wrong format etc.)
	ErrInvalidInput = errors.New("invalid input")
	// Wrong email or password, deliberately not saying which
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// Unexpected internal failure
	ErrInternal = errors.New("internal error")
	// Request body is not valid JSON
	ErrBadJSON = errors.New("bad json")
	// Missing/invalid/expired bearer token
	ErrUnauthorized = errors.New("unauthorized")
	// Resource already exists (email already registered)
	ErrAlreadyExists = errors.New("email already registered")
	// Resource not found
	ErrNotFound = errors.New("not found")
)

// storage gateway errors
var (
	// Could not establish a database connection
	ErrConnection = errors.New("database connection failed")
	// No live database connection is available
	ErrNotConnected = errors.New("database not connected")
)

// ValidationError is an ErrInvalidInput that names the offending field.
//
// errors.Is(err, ErrInvalidInput) holds for every ValidationError, so the
// api layer can map all of them to 400 without enumerating fields.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
