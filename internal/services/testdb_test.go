package services

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rolecall/rolecall-backend/internal/database"
	"github.com/rolecall/rolecall-backend/internal/models"
)

// newTestDB opens an in-memory SQLite database with the real schema.
// MaxOpenConns(1) keeps the pool on a single connection; every extra
// connection to :memory: would be a fresh empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{
		Email:          email,
		FullName:       "Test User",
		HashedPassword: "x",
		IsActive:       true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return u
}
