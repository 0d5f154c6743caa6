package repository

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/Payphone-Digital/roster/internal/model"
	"github.com/Payphone-Digital/roster/pkg/cache"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/Payphone-Digital/roster/pkg/metrics"
)

// SnapshotCache stores serialized snapshots by key. A miss is (nil, false, nil).
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, key string) ([]byte, bool, error)
	SetSnapshot(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CachedStore serves the collection from a SnapshotCache and falls back to
// the wrapped store on a miss. Cache faults never fail a fetch.
type CachedStore struct {
	next  PersonStore
	cache SnapshotCache
	key   string
	ttl   time.Duration
}

func NewCachedStore(next PersonStore, cache SnapshotCache, key string, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, cache: cache, key: key, ttl: ttl}
}

func (s *CachedStore) FetchAll(ctx context.Context) ([]model.Person, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "CachedStore.FetchAll")

	if persons, ok := s.lookup(ctx); ok {
		return persons, nil
	}

	persons, err := s.next.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(persons)
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to encode snapshot").Err(err).Log()
		return persons, nil
	}
	if err := s.cache.SetSnapshot(ctx, s.key, data, s.ttl); err != nil {
		logger.WarnWithContext(ctx, "Failed to store snapshot").
			String("key", s.key).
			Err(err).
			Log()
	}

	return persons, nil
}

func (s *CachedStore) lookup(ctx context.Context) ([]model.Person, bool) {
	data, found, err := s.cache.GetSnapshot(ctx, s.key)
	if err != nil {
		metrics.SnapshotCacheTotal.WithLabelValues("error").Inc()
		logger.WarnWithContext(ctx, "Snapshot cache unavailable, reading through").
			String("key", s.key).
			Err(err).
			Log()
		return nil, false
	}
	if !found {
		metrics.SnapshotCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	persons := []model.Person{}
	if err := json.Unmarshal(data, &persons); err != nil {
		metrics.SnapshotCacheTotal.WithLabelValues("error").Inc()
		logger.WarnWithContext(ctx, "Discarding undecodable snapshot").
			String("key", s.key).
			Err(err).
			Log()
		_ = s.cache.Delete(ctx, s.key)
		return nil, false
	}

	metrics.SnapshotCacheTotal.WithLabelValues("hit").Inc()
	logger.DebugWithContext(ctx, "Snapshot served from cache").
		Int("records", len(persons)).
		Log()
	return persons, true
}

// Invalidate drops the cached snapshot so the next fetch reads through.
func (s *CachedStore) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}

// LocalSnapshotCache keeps snapshots in process memory.
type LocalSnapshotCache struct {
	cache *cache.Cache[[]byte]
}

func NewLocalSnapshotCache(c *cache.Cache[[]byte]) *LocalSnapshotCache {
	return &LocalSnapshotCache{cache: c}
}

func (l *LocalSnapshotCache) GetSnapshot(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := l.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(data), true, nil
}

func (l *LocalSnapshotCache) SetSnapshot(_ context.Context, key string, data []byte, ttl time.Duration) error {
	l.cache.Set(key, slices.Clone(data), ttl)
	return nil
}

func (l *LocalSnapshotCache) Delete(_ context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}
