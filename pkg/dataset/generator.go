package dataset

import (
	"time"

	"github.com/Payphone-Digital/roster/internal/model"
	"github.com/brianvoe/gofakeit/v7"
)

// Creation timestamps fall inside this window.
var (
	CreatedFrom = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	CreatedTo   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

const (
	MinAge      = 18
	MaxAge      = 80
	MaxVisits   = 1000
	MaxProgress = 100
)

// Generate builds size persons from seed. The same seed and size always yield
// the same records in the same order.
func Generate(seed int64, size int) []model.Person {
	if size <= 0 {
		return []model.Person{}
	}

	faker := gofakeit.New(uint64(seed))

	statuses := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		statuses[i] = string(s)
	}

	persons := make([]model.Person, size)
	for i := range persons {
		persons[i] = model.Person{
			ID:        faker.UUID(),
			Seq:       i + 1,
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
			Phone:     faker.Phone(),
			Age:       faker.IntRange(MinAge, MaxAge),
			Visits:    faker.IntRange(0, MaxVisits),
			Status:    model.Status(faker.RandomString(statuses)),
			Progress:  faker.IntRange(0, MaxProgress),
			City:      faker.City(),
			Country:   faker.Country(),
			Company:   faker.Company(),
			JobTitle:  faker.JobTitle(),
			// Millisecond precision survives every backend round trip.
			CreatedAt: faker.DateRange(CreatedFrom, CreatedTo).UTC().Truncate(time.Millisecond),
		}
	}

	return persons
}
