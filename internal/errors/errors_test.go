package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDomainError_IsMatchesWrappedCopies(t *testing.T) {
	wrapped := WrapError(ErrUnknownSortField, fmt.Errorf("%q", "name"))

	if !errors.Is(wrapped, ErrUnknownSortField) {
		t.Fatal("Expected wrapped error to match ErrUnknownSortField")
	}
	if errors.Is(wrapped, ErrInvalidPageSize) {
		t.Error("Expected wrapped error not to match ErrInvalidPageSize")
	}

	outer := fmt.Errorf("query: %w", wrapped)
	if !errors.Is(outer, ErrUnknownSortField) {
		t.Error("Expected fmt-wrapped domain error to still match")
	}
}

func TestDomainError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrDataUnavailable, cause)

	if !errors.Is(err, cause) {
		t.Error("Expected cause to be reachable through Unwrap")
	}
	if err.Error() != "data source unavailable: connection refused" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "page size", err: ErrInvalidPageSize, want: http.StatusBadRequest},
		{name: "sort field", err: WrapError(ErrUnknownSortField, errors.New("x")), want: http.StatusBadRequest},
		{name: "direction", err: ErrInvalidSortDirection, want: http.StatusBadRequest},
		{name: "data unavailable", err: WrapError(ErrDataUnavailable, errors.New("down")), want: http.StatusServiceUnavailable},
		{name: "invalid record", err: ErrInvalidRecord, want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTTPStatus(tt.err); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(fmt.Errorf("wrap: %w", ErrInvalidPageSize)); code != "INVALID_PAGE_SIZE" {
		t.Errorf("Expected INVALID_PAGE_SIZE, got %q", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Errorf("Expected empty code, got %q", code)
	}
}
