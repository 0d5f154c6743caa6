package service

import (
	"context"
	"fmt"

	"github.com/Payphone-Digital/roster/internal/constants"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
)

// PatternDeleter removes every cache key matching a glob pattern.
type PatternDeleter interface {
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

// CacheService manages the snapshot entries shared through Redis.
type CacheService struct {
	cache PatternDeleter
}

// NewCacheService creates a new cache service
func NewCacheService(cache PatternDeleter) *CacheService {
	return &CacheService{
		cache: cache,
	}
}

// SnapshotPattern matches every cached dataset snapshot.
func SnapshotPattern() string {
	return constants.CacheKeySnapshot + "*"
}

// InvalidateSnapshots drops all cached snapshots so the next fetch reads the
// backing store. Run after (re)seeding a store that other instances share.
func (s *CacheService) InvalidateSnapshots(ctx context.Context) (int, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "InvalidateSnapshots")

	deleted, err := s.cache.DeleteByPattern(ctx, SnapshotPattern())
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to invalidate snapshots").
			Int("deleted_count", deleted).
			Err(err).
			Log()
		return deleted, fmt.Errorf("invalidate snapshots: %w", err)
	}

	logger.InfoWithContext(ctx, "Snapshots invalidated").
		String("pattern", SnapshotPattern()).
		Int("deleted_count", deleted).
		Log()
	return deleted, nil
}
