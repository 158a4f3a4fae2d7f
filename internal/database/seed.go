package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rolecall/rolecall-backend/internal/models"
)

// SeedDemoData inserts a demo user so the apply flow can be exercised
// locally. User records are otherwise owned by the identity subsystem;
// this service never creates them on a request path.
func SeedDemoData(db *gorm.DB, logger *zap.SugaredLogger) error {
	demo := models.User{
		Email:          "demo@rolecall.dev",
		FullName:       "Demo User",
		HashedPassword: "not-a-real-credential",
		IsActive:       true,
	}
	err := db.Where(models.User{Email: demo.Email}).FirstOrCreate(&demo).Error
	if err != nil {
		return err
	}
	logger.Infow("demo user ready", "user_id", demo.ID, "email", demo.Email)
	return nil
}
