package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB opens a Postgres connection and migrates the given models.
// Foreign-key constraints (e.g. show -> venue/artist) are created by gorm
// from the model associations and enforced by the database, not by handlers.
func NewPostgresDB(dsn string, models ...any) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("failed to auto-migrate: %v", err)
		}
	}

	return db
}
