package database

import (
	"github.com/Payphone-Digital/roster/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the persons table and its sort indexes
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Person{}); err != nil {
		return err
	}
	return PersonIndexes(db)
}
