package storage

import (
	"fmt"
	"log/slog"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the local sqlite file and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&StoreEntry{}, &models.LogEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	slog.Info("database opened", "path", path)
	return db, nil
}
