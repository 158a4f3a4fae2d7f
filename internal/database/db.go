package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rolecall/rolecall-backend/internal/models"
)

// Connect opens the Postgres connection and runs migrations.
// TranslateError makes the driver surface unique-index violations as
// gorm.ErrDuplicatedKey, which the apply flow relies on.
func Connect(dsn string, logger *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	logger.Infow("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates/updates the schema for all models, including the
// composite unique index on applications(user_id, job_posting_id).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.JobPosting{}, &models.Application{})
}
