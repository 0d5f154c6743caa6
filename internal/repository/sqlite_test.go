package repository

import (
	"context"
	"database/sql"
	"testing"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/pkg/database"
	"github.com/Payphone-Digital/roster/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateSQLite(context.Background(), db))
	return db
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	persons := dataset.Generate(123, 100)
	n, err := database.SeedSQLite(ctx, db, persons)
	require.NoError(t, err)
	require.Equal(t, 100, n)

	got, err := NewSQLiteStore(db).FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, persons, got)
}

func TestSQLiteStore_SeedIsIdempotent(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	_, err := database.SeedSQLite(ctx, db, samplePersons())
	require.NoError(t, err)

	n, err := database.SeedSQLite(ctx, db, samplePersons())
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := NewSQLiteStore(db).FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSQLiteStore_Empty(t *testing.T) {
	db := newTestSQLite(t)

	got, err := NewSQLiteStore(db).FetchAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteStore_MissingTable(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = NewSQLiteStore(db).FetchAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}
