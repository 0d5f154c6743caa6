package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
	"github.com/Payphone-Digital/roster/pkg/circuit"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
)

// ResilientStore bounds each fetch by a timeout and fails fast through a
// circuit breaker once the wrapped store keeps failing.
type ResilientStore struct {
	next    PersonStore
	breaker *circuit.Breaker
	timeout time.Duration
}

func NewResilientStore(next PersonStore, breaker *circuit.Breaker, timeout time.Duration) *ResilientStore {
	return &ResilientStore{next: next, breaker: breaker, timeout: timeout}
}

func (s *ResilientStore) FetchAll(ctx context.Context) ([]model.Person, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "ResilientStore.FetchAll")

	var persons []model.Person
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		var err error
		persons, err = s.next.FetchAll(ctx)
		return err
	})
	if err == nil {
		return persons, nil
	}

	switch {
	case errors.Is(err, circuit.ErrCircuitOpen), errors.Is(err, circuit.ErrTooManyRequests):
		logger.WarnWithContext(ctx, "Record store short-circuited").
			String("breaker", s.breaker.Name()).
			String("state", s.breaker.State().String()).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrDataUnavailable, err)
	case errors.Is(err, context.Canceled):
		return nil, err
	case apperrors.IsDomainError(err):
		return nil, err
	default:
		// Timeouts and raw driver errors.
		return nil, apperrors.WrapError(apperrors.ErrDataUnavailable, err)
	}
}
