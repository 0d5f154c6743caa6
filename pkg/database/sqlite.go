package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Payphone-Digital/roster/internal/model"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// created_at is stored as unix milliseconds so ordering and round trips stay
// exact regardless of driver time handling.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS persons (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL UNIQUE,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    age INTEGER NOT NULL,
    visits INTEGER NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('Single', 'In Relationship', 'Complicated', 'Married')),
    progress INTEGER NOT NULL,
    city TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    company TEXT NOT NULL DEFAULT '',
    job_title TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_persons_status ON persons(status);
CREATE INDEX IF NOT EXISTS idx_persons_created_at ON persons(created_at);
`

// OpenSQLite opens (creating if needed) the SQLite database at path.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// MigrateSQLite creates the persons table if it does not exist
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}

// SeedSQLite inserts persons when the table is empty and reports how many
// rows were written.
func SeedSQLite(ctx context.Context, db *sql.DB, persons []model.Person) (int, error) {
	var existing int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM persons").Scan(&existing); err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	if existing > 0 || len(persons) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO persons
        (id, seq, first_name, last_name, email, phone, age, visits, status, progress, city, country, company, job_title, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range persons {
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Seq, p.FirstName, p.LastName, p.Email, p.Phone,
			p.Age, p.Visits, string(p.Status), p.Progress,
			p.City, p.Country, p.Company, p.JobTitle,
			p.CreatedAt.UnixMilli(),
		); err != nil {
			return 0, fmt.Errorf("failed to insert person %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	logger.GetLogger().Info("SQLite persons table seeded",
		zap.Int("rows", len(persons)),
	)
	return len(persons), nil
}
