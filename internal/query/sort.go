package query

import (
	"slices"

	"github.com/Payphone-Digital/roster/internal/model"
)

// Sort returns a stably ordered copy of records. Descending negates the
// comparator, so equal keys keep their input order in both directions.
func Sort(records []model.Person, field SortField, dir Direction) []model.Person {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b model.Person) int {
		c := field.Compare(a, b)
		if dir == Descending {
			return -c
		}
		return c
	})
	return sorted
}
