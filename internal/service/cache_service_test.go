package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDeleter struct {
	patterns []string
	deleted  int
	err      error
}

func (r *recordingDeleter) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	r.patterns = append(r.patterns, pattern)
	return r.deleted, r.err
}

func TestInvalidateSnapshots(t *testing.T) {
	deleter := &recordingDeleter{deleted: 3}
	svc := NewCacheService(deleter)

	n, err := svc.InvalidateSnapshots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"roster:snapshot:*"}, deleter.patterns)
}

func TestInvalidateSnapshots_Error(t *testing.T) {
	cause := errors.New("scan failed")
	svc := NewCacheService(&recordingDeleter{deleted: 1, err: cause})

	n, err := svc.InvalidateSnapshots(context.Background())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, n)
}
