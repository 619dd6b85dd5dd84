package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Client-correctable errors
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"

	// Authentication errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeHashingError  ErrorCode = "HASHING_ERROR"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Recoverable reports whether the error is client-correctable, meaning it
// maps to a 4xx status and its message may be surfaced to the caller.
func (e *AppError) Recoverable() bool {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed, ErrCodeNotFound:
		return true
	default:
		return false
	}
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes.
// Authorization denials map to 400, not 403; the response contract fixes this.
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized, ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case ErrCodeInternalError, ErrCodeDatabaseError, ErrCodeHashingError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors
var (
	ErrUnauthorized = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidToken = New(ErrCodeInvalidToken, "invalid token")
	ErrNotFound     = New(ErrCodeNotFound, "resource not found")
	ErrBadRequest   = New(ErrCodeBadRequest, "bad request")
)

// Helper functions for creating contextual errors

// NewBadRequest creates a client-correctable error carrying a user-facing message
func NewBadRequest(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

// NewNotFound creates a not found error carrying a user-facing message
func NewNotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewDatabaseError creates a database error with cause
func NewDatabaseError(cause error) *AppError {
	return Wrap(ErrCodeDatabaseError, "database operation failed", cause)
}

// NewHashingError creates a password hashing error with cause
func NewHashingError(cause error) *AppError {
	return Wrap(ErrCodeHashingError, "password hashing failed", cause)
}
