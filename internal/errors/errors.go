package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target carries the same code, so wrapped copies still
// match the predefined errors below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Query request errors
	ErrInvalidPageSize      = NewDomainError("INVALID_PAGE_SIZE", "page size must be a positive integer")
	ErrUnknownSortField     = NewDomainError("UNKNOWN_SORT_FIELD", "unknown sort field")
	ErrInvalidSortDirection = NewDomainError("INVALID_SORT_DIRECTION", "sort direction must be asc or desc")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "invalid input")

	// Data source errors
	ErrDataUnavailable = NewDomainError("DATA_UNAVAILABLE", "data source unavailable")
	ErrInvalidRecord   = NewDomainError("INVALID_RECORD", "invalid record in data source")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "INVALID_PAGE_SIZE", "UNKNOWN_SORT_FIELD", "INVALID_SORT_DIRECTION", "INVALID_INPUT":
		return http.StatusBadRequest

	// 503 Service Unavailable
	case "DATA_UNAVAILABLE":
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default), INVALID_RECORD included
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Err != nil {
			return domainErr.Error()
		}
		return domainErr.Message
	}

	return err.Error()
}

// GetErrorCode returns the domain code of err, or an empty string
func GetErrorCode(err error) string {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code
	}
	return ""
}
