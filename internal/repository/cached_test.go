package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Payphone-Digital/roster/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalCache(t *testing.T) *LocalSnapshotCache {
	t.Helper()
	c := cache.NewCache[[]byte](time.Hour)
	t.Cleanup(c.Close)
	return NewLocalSnapshotCache(c)
}

func TestCachedStore_ReadsThroughOnce(t *testing.T) {
	backend := &stubStore{persons: samplePersons()}
	store := NewCachedStore(backend, newLocalCache(t), "roster:snapshot:test", time.Minute)
	ctx := context.Background()

	first, err := store.FetchAll(ctx)
	require.NoError(t, err)
	second, err := store.FetchAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), backend.calls.Load())
	assert.Equal(t, first, second)
	assert.Equal(t, samplePersons(), second)
}

func TestCachedStore_Invalidate(t *testing.T) {
	backend := &stubStore{persons: samplePersons()}
	store := NewCachedStore(backend, newLocalCache(t), "k", time.Minute)
	ctx := context.Background()

	_, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Invalidate(ctx))
	_, err = store.FetchAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), backend.calls.Load())
}

func TestCachedStore_BackendErrorNotCached(t *testing.T) {
	backend := &stubStore{err: errBackend}
	store := NewCachedStore(backend, newLocalCache(t), "k", time.Minute)
	ctx := context.Background()

	_, err := store.FetchAll(ctx)
	require.ErrorIs(t, err, errBackend)

	backend.err = nil
	backend.persons = samplePersons()
	got, err := store.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

type brokenCache struct{}

func (brokenCache) GetSnapshot(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("redis: connection refused")
}

func (brokenCache) SetSnapshot(context.Context, string, []byte, time.Duration) error {
	return errors.New("redis: connection refused")
}

func (brokenCache) Delete(context.Context, string) error { return nil }

func TestCachedStore_CacheFaultsFallThrough(t *testing.T) {
	backend := &stubStore{persons: samplePersons()}
	store := NewCachedStore(backend, brokenCache{}, "k", time.Minute)

	got, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCachedStore_CorruptSnapshotDiscarded(t *testing.T) {
	local := newLocalCache(t)
	require.NoError(t, local.SetSnapshot(context.Background(), "k", []byte("{not json"), time.Minute))

	backend := &stubStore{persons: samplePersons()}
	store := NewCachedStore(backend, local, "k", time.Minute)

	got, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, int32(1), backend.calls.Load())
}
