package solverclient

import (
	"fmt"
	"strings"
)

// ErrorType categorizes solver client failures.
type ErrorType string

const (
	// ErrTypeNetwork indicates the request never reached the service.
	ErrTypeNetwork ErrorType = "network"

	// ErrTypeTimeout indicates the request exceeded the configured timeout.
	ErrTypeTimeout ErrorType = "timeout"

	// ErrTypeService indicates the service answered with a failure status.
	ErrTypeService ErrorType = "service"

	// ErrTypeDecode indicates the response body could not be decoded.
	ErrTypeDecode ErrorType = "decode"

	// ErrTypeValidation indicates a request that the client refused to send.
	ErrTypeValidation ErrorType = "validation"
)

// ServiceError is the error type returned by solver clients.
type ServiceError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	parts := []string{fmt.Sprintf("solver: type=%s", e.Type)}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	parts = append(parts, e.Message)
	if e.Cause != nil {
		parts = append(parts, "cause="+e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error { return e.Cause }

// Is matches service errors by type.
func (e *ServiceError) Is(target error) bool {
	if se, ok := target.(*ServiceError); ok {
		return e.Type == se.Type
	}
	return false
}

// NewServiceError creates a service error without a cause.
func NewServiceError(errType ErrorType, message string) *ServiceError {
	return &ServiceError{Type: errType, Message: message}
}

// NewServiceErrorWithCause creates a service error wrapping a cause.
func NewServiceErrorWithCause(errType ErrorType, message string, cause error) *ServiceError {
	return &ServiceError{Type: errType, Message: message, Cause: cause}
}

// IsTimeout reports whether the error is a timeout service error.
func IsTimeout(err error) bool {
	se, ok := err.(*ServiceError)
	return ok && se.Type == ErrTypeTimeout
}
