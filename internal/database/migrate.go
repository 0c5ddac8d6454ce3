package database

import (
	"github.com/recipeshare/backend/internal/models"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every model the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Recipe{},
	)
}
