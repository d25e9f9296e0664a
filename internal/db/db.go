package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farmstand/internal/models"
)

// Open connects to the database and migrates the catalog schema.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("db: empty DSN (check your .env)")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Market{},
		&models.Vendor{},
		&models.Product{},
	); err != nil {
		return nil, fmt.Errorf("db: migrate: %w", err)
	}
	return conn, nil
}
