package database

import (
	"jobapply_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate brings the schema up to date. uuid_generate_v4 needs the
// uuid-ossp extension, so that goes first.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Application{},
		&models.ApplicationProject{},
		&models.Notification{},
	)
}
