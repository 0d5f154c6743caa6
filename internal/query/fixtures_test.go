package query

import (
	"fmt"
	"time"

	"github.com/Payphone-Digital/roster/internal/model"
)

var baseTime = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

var fixedZone = time.FixedZone("UTC+7", 7*60*60)

func person(seq int, first, last string, status model.Status, age int, createdDays int) model.Person {
	return model.Person{
		ID:        fmt.Sprintf("p-%03d", seq),
		Seq:       seq,
		FirstName: first,
		LastName:  last,
		Status:    status,
		Age:       age,
		Visits:    seq * 10,
		Progress:  seq % 101,
		CreatedAt: baseTime.AddDate(0, 0, createdDays),
	}
}

func ids(records []model.Person) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func fixture() []model.Person {
	return []model.Person{
		person(1, "Alice", "Morgan", model.StatusSingle, 30, 5),
		person(2, "Bob", "Alison", model.StatusMarried, 45, 1),
		person(3, "Carla", "Stone", model.StatusMarried, 30, 9),
		person(4, "Dmitri", "Ivanov", model.StatusComplicated, 22, 3),
		person(5, "ALINA", "Ford", model.StatusInRelationship, 45, 7),
		person(6, "Eve", "Parker", model.StatusMarried, 61, 2),
	}
}
