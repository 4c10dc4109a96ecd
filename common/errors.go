package common

import "errors"

// Store-level failures.
var ErrStoreUnavailable = errors.New("store unavailable")
var ErrPermissionDenied = errors.New("permission denied")
var ErrNotFound = errors.New("record not found")

// Workflow failures.
var ErrAlreadyForwarded = errors.New("client already forwarded to strategy head")
var ErrTransitionNotAllowed = errors.New("status transition not allowed")

// ValidationError is a local precondition failure; no write was attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(message string) error {
	return &ValidationError{Message: message}
}

// AuthRejectedError wraps a rejection from the external auth service.
type AuthRejectedError struct {
	Message string
	Cause   error
}

func (e *AuthRejectedError) Error() string {
	return e.Message
}

func (e *AuthRejectedError) Unwrap() error {
	return e.Cause
}

func AuthRejected(message string, cause error) error {
	return &AuthRejectedError{Message: message, Cause: cause}
}
