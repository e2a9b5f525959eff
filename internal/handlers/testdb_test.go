package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/models"
)

// newTestDB opens a throwaway in-memory database with the full schema, so
// handlers can be exercised over real queries without a Postgres instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Crop{},
		&models.Resource{},
		&models.ResourceRequest{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedFarmer(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test Farmer",
		Role:         models.RoleFarmer,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed farmer: %v", err)
	}
	return &user
}
