package database

import (
	"github.com/Payphone-Digital/roster/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// personIndexes back the columns a query can sort on and the name search.
var personIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_persons_created_at ON persons(created_at DESC);",
	"CREATE INDEX IF NOT EXISTS idx_persons_age ON persons(age);",
	"CREATE INDEX IF NOT EXISTS idx_persons_visits ON persons(visits);",
	"CREATE INDEX IF NOT EXISTS idx_persons_progress ON persons(progress);",
	"CREATE INDEX IF NOT EXISTS idx_persons_first_name_lower ON persons(lower(first_name));",
	"CREATE INDEX IF NOT EXISTS idx_persons_last_name_lower ON persons(lower(last_name));",
}

// PersonIndexes creates the secondary indexes on persons. Failures are
// logged and skipped; the table stays usable without them.
func PersonIndexes(db *gorm.DB) error {
	created := 0
	for _, indexSQL := range personIndexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			logger.GetLogger().Warn("Failed to create index",
				zap.String("sql", indexSQL),
				zap.Error(err),
			)
			continue
		}
		created++
	}

	logger.GetLogger().Debug("Person indexes ensured",
		zap.Int("created", created),
		zap.Int("total", len(personIndexes)),
	)
	return nil
}
