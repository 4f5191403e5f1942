package inmemstore

import (
	"fmt"

	"github.com/SeaCloudHub/storefront/adapters/postgrestore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens a private in-memory sqlite database with every table
// of postgrestore created. Each call returns an independent database.
func NewConnection() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// every new connection to :memory: is a new empty database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(postgrestore.Schemas()...); err != nil {
		return nil, fmt.Errorf("migrate schemas: %w", err)
	}

	return db, nil
}
