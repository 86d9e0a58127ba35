package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sachinkumar2222/Productr/internal/infrastructure/repositories"
)

// Open creates a new database connection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBIdentity{}); err != nil {
		return fmt.Errorf("failed to migrate identities table: %w", err)
	}
	if err := db.AutoMigrate(&repositories.DBProduct{}); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}
