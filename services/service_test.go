// services/service_test.go - Shared fixtures for service tests
package services

import (
	"testing"
	"time"

	"tastybook/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Recipe{},
		&models.Review{},
		&models.Favorite{},
		&models.PointsTransaction{},
		&models.UserAchievement{},
		&models.ContactMessage{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "hashed-password",
		Role:     models.RoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createAdmin(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	admin := models.User{
		Username: username,
		Password: "hashed-password",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func createRecipe(t *testing.T, db *gorm.DB, ownerID uint, title string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		UserID:         ownerID,
		Title:          title,
		Ingredients:    "2 eggs\n1 cup flour",
		Instructions:   "Mix everything.\nBake for 20 minutes.",
		ApprovalStatus: models.ApprovalPending,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func createApprovedRecipe(t *testing.T, db *gorm.DB, ownerID uint, title string, approvedAt time.Time) *models.Recipe {
	t.Helper()

	recipe := createRecipe(t, db, ownerID, title)
	require.NoError(t, db.Model(recipe).Updates(map[string]interface{}{
		"approval_status": models.ApprovalApproved,
		"is_published":    true,
		"approved_at":     approvedAt,
	}).Error)
	return recipe
}

func userPoints(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	return user.PointsTotal
}

func ledgerCount(t *testing.T, db *gorm.DB, userID uint, action string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.PointsTransaction{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&count).Error)
	return count
}
