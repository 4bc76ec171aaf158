package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeTooLarge    ErrorType = "too_large"
	ErrorTypeUnsupported ErrorType = "unsupported"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeMethod      ErrorType = "method_not_allowed"
	ErrorTypeInternal    ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewTooLargeError creates a payload-too-large error
func NewTooLargeError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    message,
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewUnsupportedMediaError creates an unsupported media type error
func NewUnsupportedMediaError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupported,
		Message:    message,
		StatusCode: http.StatusUnsupportedMediaType,
		Cause:      cause,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a method not allowed error
func NewMethodNotAllowedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeMethod,
		Message:    message,
		StatusCode: http.StatusMethodNotAllowed,
	}
}

// NewInternalError creates a new internal server error. The cause text is
// exposed as Details.
func NewInternalError(message string, cause error) *AppError {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
