package query

import (
	"fmt"

	"github.com/Payphone-Digital/roster/internal/constants"
	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
)

// Request is the caller-facing query. Page may be out of range; it is
// clamped, not rejected.
type Request struct {
	Page          int
	PageSize      int
	Search        string
	Status        string
	SortField     string
	SortDirection string
}

// DefaultRequest returns the first page of ten, newest first, unfiltered.
func DefaultRequest() Request {
	return Request{
		Page:          constants.DefaultPage,
		PageSize:      constants.DefaultPageSize,
		Search:        constants.DefaultSearch,
		Status:        constants.DefaultStatus,
		SortField:     constants.DefaultSort,
		SortDirection: constants.DefaultOrder,
	}
}

// Plan is a Request with its sort field and direction resolved.
type Plan struct {
	Page      int
	PageSize  int
	Predicate Predicate
	SortField SortField
	Direction Direction
}

// Resolve validates the request shape and resolves the typed sort settings.
func (r Request) Resolve() (Plan, error) {
	if r.PageSize <= 0 {
		return Plan{}, apperrors.WrapError(apperrors.ErrInvalidPageSize, fmt.Errorf("got %d", r.PageSize))
	}
	field, err := ParseSortField(r.SortField)
	if err != nil {
		return Plan{}, err
	}
	dir, err := ParseDirection(r.SortDirection)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Page:      r.Page,
		PageSize:  r.PageSize,
		Predicate: Predicate{Search: r.Search, Status: r.Status},
		SortField: field,
		Direction: dir,
	}, nil
}

// Result is the page returned to callers. Total counts filtered records,
// not the page.
type Result struct {
	Items      []model.Person `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// StatusFilters lists the recognized status filter values: the "all"
// sentinel followed by every status label.
func StatusFilters() []string {
	values := make([]string, 0, len(model.Statuses)+1)
	values = append(values, constants.StatusAll)
	for _, s := range model.Statuses {
		values = append(values, string(s))
	}
	return values
}
