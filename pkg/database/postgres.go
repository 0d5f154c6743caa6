package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Payphone-Digital/roster/config"
	"github.com/Payphone-Digital/roster/internal/constants"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewPostgresDB opens the PostgreSQL connection described by cfg and
// configures its pool.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	startTime := time.Now()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseConnectionString(),
		PreferSimpleProtocol: false,
	}), &gorm.Config{
		Logger: gormLogMode(cfg.App.Environment),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true, // Cache prepared statements
	})
	if err != nil {
		logger.GetLogger().Error("Failed to connect to database",
			zap.Error(err),
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
			zap.String("database", cfg.Database.Name),
		)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.GetLogger().Info("Database connected successfully",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Name),
		zap.Duration("connection_time", time.Since(startTime)),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	return db, nil
}

func gormLogMode(environment string) gormLogger.Interface {
	switch environment {
	case constants.EnvProduction:
		return gormLogger.Default.LogMode(gormLogger.Silent)
	case constants.EnvStaging:
		return gormLogger.Default.LogMode(gormLogger.Warn)
	default:
		return gormLogger.Default.LogMode(gormLogger.Info)
	}
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance for closing: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	logger.GetLogger().Info("Database connection closed successfully")
	return nil
}
