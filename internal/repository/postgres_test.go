package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var personColumns = []string{
	"id", "seq", "first_name", "last_name", "email", "phone", "age", "visits",
	"status", "progress", "city", "country", "company", "job_title", "created_at",
}

const fetchPersonsSQL = `SELECT * FROM "persons" ORDER BY seq ASC`

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPostgresStore_FetchAll(t *testing.T) {
	db, mock := newMockGorm(t)

	rows := sqlmock.NewRows(personColumns)
	for _, p := range samplePersons() {
		rows.AddRow(p.ID, p.Seq, p.FirstName, p.LastName, p.Email, p.Phone, p.Age, p.Visits,
			string(p.Status), p.Progress, p.City, p.Country, p.Company, p.JobTitle, p.CreatedAt)
	}
	mock.ExpectQuery(regexp.QuoteMeta(fetchPersonsSQL)).WillReturnRows(rows)

	got, err := NewPostgresStore(db).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, samplePersons(), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_QueryError(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery(regexp.QuoteMeta(fetchPersonsSQL)).WillReturnError(errors.New("connection refused"))

	_, err := NewPostgresStore(db).FetchAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_InvalidRow(t *testing.T) {
	db, mock := newMockGorm(t)

	p := samplePersons()[0]
	rows := sqlmock.NewRows(personColumns).
		AddRow(p.ID, p.Seq, p.FirstName, p.LastName, p.Email, p.Phone, p.Age, p.Visits,
			"Widowed", p.Progress, p.City, p.Country, p.Company, p.JobTitle, p.CreatedAt)
	mock.ExpectQuery(regexp.QuoteMeta(fetchPersonsSQL)).WillReturnRows(rows)

	_, err := NewPostgresStore(db).FetchAll(context.Background())
	require.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecord)
}

func TestPostgresStore_CancelledContext(t *testing.T) {
	db, _ := newMockGorm(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPostgresStore(db).FetchAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
