package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/Payphone-Digital/roster/internal/model"
)

var baseTime = time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)

func samplePersons() []model.Person {
	return []model.Person{
		{ID: "6f1c0c2e-0001-4000-8000-000000000001", Seq: 1, FirstName: "Ada", LastName: "Lovelace", Age: 36, Visits: 10, Status: model.StatusMarried, Progress: 90, CreatedAt: baseTime},
		{ID: "6f1c0c2e-0002-4000-8000-000000000002", Seq: 2, FirstName: "Alan", LastName: "Turing", Age: 41, Visits: 250, Status: model.StatusSingle, Progress: 40, CreatedAt: baseTime.Add(time.Hour)},
		{ID: "6f1c0c2e-0003-4000-8000-000000000003", Seq: 3, FirstName: "Grace", LastName: "Hopper", Age: 79, Visits: 999, Status: model.StatusComplicated, Progress: 0, CreatedAt: baseTime.Add(-time.Hour)},
	}
}

// stubStore returns a fixed result and counts calls.
type stubStore struct {
	persons []model.Person
	err     error
	calls   atomic.Int32
	delay   time.Duration
}

func (s *stubStore) FetchAll(ctx context.Context) ([]model.Person, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Person, len(s.persons))
	copy(out, s.persons)
	return out, nil
}

var errBackend = errors.New("backend exploded")
