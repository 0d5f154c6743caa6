package repository

import (
	"context"
	"time"

	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/model"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"gorm.io/gorm"
)

// PostgresStore reads the persons table through GORM.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (r *PostgresStore) FetchAll(ctx context.Context) ([]model.Person, error) {
	ctx = ctxutil.WithFunction(ctx, "repository", "PostgresStore.FetchAll")

	// Check if context is cancelled
	if err := ctx.Err(); err != nil {
		logger.WarnWithContext(ctx, "Context cancelled before query").
			Err(err).
			Log()
		return nil, err
	}

	start := time.Now()
	persons := []model.Person{}

	result := r.db.WithContext(ctx).Order("seq ASC").Find(&persons)
	duration := time.Since(start)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch persons").
			Duration(duration).
			Err(result.Error).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrDataUnavailable, result.Error)
	}

	for i := range persons {
		if err := persons[i].Validate(); err != nil {
			logger.ErrorWithContext(ctx, "Invalid person row").
				Int("seq", persons[i].Seq).
				Err(err).
				Log()
			return nil, apperrors.WrapError(apperrors.ErrDataUnavailable, apperrors.WrapError(apperrors.ErrInvalidRecord, err))
		}
		persons[i].CreatedAt = persons[i].CreatedAt.UTC()
	}

	logger.DebugWithContext(ctx, "Persons fetched from postgres").
		Int("records", len(persons)).
		Duration(duration).
		Log()

	return persons, nil
}
