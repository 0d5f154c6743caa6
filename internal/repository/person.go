package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
	"github.com/Payphone-Digital/roster/pkg/dataset"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
)

// PersonStore yields the full person collection in provisioning order.
// Every call returns a slice the caller owns; mutating it never reaches the
// store. Failures are reported as apperrors.ErrDataUnavailable.
type PersonStore interface {
	FetchAll(ctx context.Context) ([]model.Person, error)
}

// MemoryStore serves a snapshot provisioned once and shared read-only.
type MemoryStore struct {
	mu      sync.RWMutex
	records []model.Person
	ready   bool
	latency time.Duration
}

// NewMemoryStore returns an empty store. FetchAll fails until Provision runs.
// A positive latency delays every fetch, as a remote source would.
func NewMemoryStore(latency time.Duration) *MemoryStore {
	return &MemoryStore{latency: latency}
}

// NewSeededMemoryStore provisions a store with the generated dataset for seed.
func NewSeededMemoryStore(seed int64, size int, latency time.Duration) (*MemoryStore, error) {
	store := NewMemoryStore(latency)
	if err := store.Provision(dataset.Generate(seed, size)); err != nil {
		return nil, err
	}
	return store, nil
}

// Provision validates records and installs a private copy of them as the
// snapshot. Records are kept in Seq order.
func (s *MemoryStore) Provision(records []model.Person) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return apperrors.WrapError(apperrors.ErrInvalidRecord, err)
		}
	}

	snapshot := slices.Clone(records)
	if snapshot == nil {
		snapshot = []model.Person{}
	}
	slices.SortStableFunc(snapshot, bySeq)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = snapshot
	s.ready = true
	return nil
}

func (s *MemoryStore) FetchAll(ctx context.Context) ([]model.Person, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "MemoryStore.FetchAll")

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			logger.WarnWithContext(ctx, "Context cancelled while waiting for dataset").
				Err(ctx.Err()).
				Log()
			return nil, ctx.Err()
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, apperrors.WrapError(apperrors.ErrDataUnavailable, fmt.Errorf("dataset not provisioned"))
	}

	logger.DebugWithContext(ctx, "Dataset served from memory").
		Int("records", len(s.records)).
		Log()

	return slices.Clone(s.records), nil
}

func bySeq(a, b model.Person) int {
	return a.Seq - b.Seq
}
