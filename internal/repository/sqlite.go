package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
)

const selectPersons = `SELECT id, seq, first_name, last_name, email, phone, age, visits,
       status, progress, city, country, company, job_title, created_at
FROM persons
ORDER BY seq ASC`

// SQLiteStore reads the persons table from a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (r *SQLiteStore) FetchAll(ctx context.Context) ([]model.Person, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "SQLiteStore.FetchAll")

	start := time.Now()
	persons, err := r.query(ctx)
	duration := time.Since(start)

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch persons").
			Duration(duration).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrDataUnavailable, err)
	}

	logger.DebugWithContext(ctx, "Persons fetched from sqlite").
		Int("records", len(persons)).
		Duration(duration).
		Log()

	return persons, nil
}

func (r *SQLiteStore) query(ctx context.Context) ([]model.Person, error) {
	rows, err := r.db.QueryContext(ctx, selectPersons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := []model.Person{}
	for rows.Next() {
		var (
			p         model.Person
			status    string
			createdAt int64
		)
		if err := rows.Scan(
			&p.ID, &p.Seq, &p.FirstName, &p.LastName, &p.Email, &p.Phone,
			&p.Age, &p.Visits, &status, &p.Progress,
			&p.City, &p.Country, &p.Company, &p.JobTitle, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}

		p.Status = model.Status(status)
		p.CreatedAt = time.UnixMilli(createdAt).UTC()
		if err := p.Validate(); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidRecord, err)
		}
		persons = append(persons, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return persons, nil
}
