package query

import (
	"cmp"
	"fmt"

	"github.com/Payphone-Digital/roster/internal/constants"
	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
)

// SortField enumerates the fields a query may be ordered by. Each member
// carries its own typed comparator, so there is no dynamic field lookup.
type SortField int

const (
	SortByCreatedAt SortField = iota
	SortByAge
	SortByVisits
	SortByProgress
)

type sortFieldDef struct {
	name    string
	compare func(a, b model.Person) int
}

var sortFieldDefs = map[SortField]sortFieldDef{
	SortByCreatedAt: {
		name:    constants.SortCreatedAt,
		compare: func(a, b model.Person) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
	SortByAge: {
		name:    constants.SortAge,
		compare: func(a, b model.Person) int { return cmp.Compare(a.Age, b.Age) },
	},
	SortByVisits: {
		name:    constants.SortVisits,
		compare: func(a, b model.Person) int { return cmp.Compare(a.Visits, b.Visits) },
	},
	SortByProgress: {
		name:    constants.SortProgress,
		compare: func(a, b model.Person) int { return cmp.Compare(a.Progress, b.Progress) },
	},
}

// SortFields lists every sortable field in declaration order.
var SortFields = []SortField{SortByCreatedAt, SortByAge, SortByVisits, SortByProgress}

func (f SortField) String() string {
	if def, ok := sortFieldDefs[f]; ok {
		return def.name
	}
	return fmt.Sprintf("SortField(%d)", int(f))
}

// Compare orders a before b (negative), equal (zero) or after (positive)
// under this field.
func (f SortField) Compare(a, b model.Person) int {
	def, ok := sortFieldDefs[f]
	if !ok {
		return 0
	}
	return def.compare(a, b)
}

// ParseSortField resolves a caller-supplied field name. An empty name selects
// the default (createdAt); any other unknown name is rejected.
func ParseSortField(raw string) (SortField, error) {
	if raw == "" {
		return SortByCreatedAt, nil
	}
	for _, f := range SortFields {
		if sortFieldDefs[f].name == raw {
			return f, nil
		}
	}
	return 0, apperrors.WrapError(apperrors.ErrUnknownSortField, fmt.Errorf("%q", raw))
}

// SortFieldNames returns the wire names of all sortable fields.
func SortFieldNames() []string {
	names := make([]string, 0, len(SortFields))
	for _, f := range SortFields {
		names = append(names, f.String())
	}
	return names
}

// Direction is the sort order of a query.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return constants.OrderAsc
	}
	return constants.OrderDesc
}

// ParseDirection accepts "asc" and "desc"; empty selects descending.
func ParseDirection(raw string) (Direction, error) {
	switch raw {
	case "", constants.OrderDesc:
		return Descending, nil
	case constants.OrderAsc:
		return Ascending, nil
	default:
		return 0, apperrors.WrapError(apperrors.ErrInvalidSortDirection, fmt.Errorf("%q", raw))
	}
}

// DirectionNames returns the accepted direction values.
func DirectionNames() []string {
	return []string{constants.OrderAsc, constants.OrderDesc}
}
