// Package errors provides typed errors for the application
package errors

import "errors"

// baseError is the base implementation for all error types
type baseError struct {
	msg string
}

func (e *baseError) Error() string {
	return e.msg
}

// ValidationError represents invalid input or configuration
type ValidationError struct {
	baseError
}

// NewValidationError creates a new ValidationError
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{baseError{msg: msg}}
}

// UnavailableError represents a failed call to a remote collaborator
type UnavailableError struct {
	baseError
}

// NewUnavailableError creates a new UnavailableError
func NewUnavailableError(msg string) *UnavailableError {
	return &UnavailableError{baseError{msg: msg}}
}

// InternalError represents a local failure
type InternalError struct {
	baseError
}

// NewInternalError creates a new InternalError
func NewInternalError(msg string) *InternalError {
	return &InternalError{baseError{msg: msg}}
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
