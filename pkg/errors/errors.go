package errors

import (
	"fmt"
	"net/http"
)

// Messages returned to clients for the fixed error kinds.
const (
	MsgUnauthorized     = "Unauthorized"
	MsgMalformedID      = "The provided ID is not a valid GUID."
	MsgUnexpected       = "An unexpected error occurred."
	MsgTooManyRequests  = "Too many requests."
	msgMalformedInteger = "The provided %s is not a valid integer."
)

// Common application errors
var (
	ErrNotFound = NewNotFoundError("resource", "resource not found")
	ErrInternal = NewInternalError("internal server error", nil)
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewMalformedIDError reports an identifier that is not a GUID.
func NewMalformedIDError() *ValidationError {
	return NewValidationError("id", MsgMalformedID)
}

// NewMalformedIntegerError reports a query parameter that is not an integer.
func NewMalformedIntegerError(param string) *ValidationError {
	return NewValidationError(param, fmt.Sprintf(msgMalformedInteger, param))
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser is implemented by errors that map onto an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
}
