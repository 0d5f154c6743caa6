package query

import (
	"fmt"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
)

// Window is one page cut out of an ordered collection.
type Window struct {
	Items      []model.Person
	Total      int
	Page       int
	TotalPages int
}

// TotalPages is ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	return max(1, min(page, totalPages))
}

// Paginate clamps page into range and slices out its records. A non-positive
// pageSize is rejected with ErrInvalidPageSize rather than coerced.
func Paginate(records []model.Person, page, pageSize int) (Window, error) {
	if pageSize <= 0 {
		return Window{}, apperrors.WrapError(apperrors.ErrInvalidPageSize, fmt.Errorf("got %d", pageSize))
	}

	total := len(records)
	totalPages := TotalPages(total, pageSize)
	resolved := ClampPage(page, totalPages)

	start := (resolved - 1) * pageSize
	end := min(start+pageSize, total)

	items := make([]model.Person, 0, end-start)
	if start < end {
		items = append(items, records[start:end]...)
	}

	return Window{
		Items:      items,
		Total:      total,
		Page:       resolved,
		TotalPages: totalPages,
	}, nil
}
