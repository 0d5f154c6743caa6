package query

import (
	"strings"

	"github.com/Payphone-Digital/roster/internal/constants"
	"github.com/Payphone-Digital/roster/internal/model"
)

// Predicate combines the free-text and status conditions of a query.
type Predicate struct {
	Search string
	Status string
}

// matchesAllStatuses reports whether the status condition is disabled.
func (p Predicate) matchesAllStatuses() bool {
	return p.Status == "" || p.Status == constants.StatusAll
}

func (p Predicate) match(rec model.Person, term string) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(rec.FirstName), term) &&
		!strings.Contains(strings.ToLower(rec.LastName), term) {
		return false
	}
	if !p.matchesAllStatuses() && string(rec.Status) != p.Status {
		return false
	}
	return true
}

// Match reports whether rec satisfies both conditions.
func (p Predicate) Match(rec model.Person) bool {
	return p.match(rec, strings.ToLower(p.Search))
}

// Filter returns the records matching p, preserving their order. The search
// term matches either name field case-insensitively; an unknown status label
// matches nothing.
func Filter(records []model.Person, p Predicate) []model.Person {
	term := strings.ToLower(p.Search)
	out := make([]model.Person, 0, len(records))
	for _, rec := range records {
		if p.match(rec, term) {
			out = append(out, rec)
		}
	}
	return out
}
