package database

import (
	"context"
	"fmt"

	"github.com/Payphone-Digital/roster/internal/model"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seedBatchSize = 50

// SeedPersons inserts persons when the table is empty. It returns the
// number of rows written, zero when the table already had data.
func SeedPersons(ctx context.Context, db *gorm.DB, persons []model.Person) (int, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&model.Person{}).Count(&existing).Error; err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}

	if existing > 0 {
		logger.GetLogger().Info("Persons table already seeded",
			zap.Int64("rows", existing),
		)
		return 0, nil
	}

	if len(persons) == 0 {
		return 0, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(persons, seedBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed persons: %w", err)
	}

	logger.GetLogger().Info("Persons table seeded",
		zap.Int("rows", len(persons)),
	)
	return len(persons), nil
}
