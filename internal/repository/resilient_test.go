package repository

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/pkg/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBreaker(threshold int) *circuit.Breaker {
	return circuit.NewBreaker("persons", circuit.Config{
		Threshold: threshold,
		Timeout:   time.Hour,
	}, zap.NewNop())
}

func TestResilientStore_PassesThrough(t *testing.T) {
	backend := &stubStore{persons: samplePersons()}
	store := NewResilientStore(backend, newTestBreaker(3), time.Second)

	got, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestResilientStore_WrapsRawErrors(t *testing.T) {
	backend := &stubStore{err: errBackend}
	store := NewResilientStore(backend, newTestBreaker(3), time.Second)

	_, err := store.FetchAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.ErrorIs(t, err, errBackend)
}

func TestResilientStore_OpensAndFailsFast(t *testing.T) {
	backend := &stubStore{err: apperrors.WrapError(apperrors.ErrDataUnavailable, errBackend)}
	breaker := newTestBreaker(2)
	store := NewResilientStore(backend, breaker, time.Second)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := store.FetchAll(ctx)
		require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	}
	require.True(t, breaker.IsOpen())

	_, err := store.FetchAll(ctx)
	require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.ErrorIs(t, err, circuit.ErrCircuitOpen)
	assert.Equal(t, int32(2), backend.calls.Load(), "open circuit must not reach the store")
}

func TestResilientStore_Timeout(t *testing.T) {
	backend := &stubStore{persons: samplePersons(), delay: time.Hour}
	store := NewResilientStore(backend, newTestBreaker(5), 10*time.Millisecond)

	_, err := store.FetchAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResilientStore_CallerCancellation(t *testing.T) {
	backend := &stubStore{persons: samplePersons()}
	breaker := newTestBreaker(1)
	store := NewResilientStore(backend, breaker, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.FetchAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, breaker.IsOpen())
}
