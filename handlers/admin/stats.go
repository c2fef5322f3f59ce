// handlers/admin/stats.go - Admin dashboard counters
package admin

import (
	"tastybook/database"
	"tastybook/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the counters shown at the top of the admin panel
func GetStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var userCount, recipeCount, reviewCount, favoriteCount, pendingCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Recipe{}).Count(&recipeCount)
	db.Model(&models.Review{}).Count(&reviewCount)
	db.Model(&models.Favorite{}).Count(&favoriteCount)
	db.Model(&models.Recipe{}).Where("approval_status = ?", models.ApprovalPending).Count(&pendingCount)

	var recentUsers []models.User
	db.Select("id", "username", "first_name", "last_name", "created_at").
		Order("created_at DESC").Limit(5).Find(&recentUsers)

	var recentRecipes []models.Recipe
	db.Preload("User").Order("created_at DESC").Limit(5).Find(&recentRecipes)
	for i := range recentRecipes {
		if recentRecipes[i].User != nil {
			recentRecipes[i].User.Password = ""
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"users":          userCount,
		"recipes":        recipeCount,
		"reviews":        reviewCount,
		"favorites":      favoriteCount,
		"pending":        pendingCount,
		"recent_users":   recentUsers,
		"recent_recipes": recentRecipes,
	})
}

// GetContactMessages lists recent contact form submissions
func GetContactMessages(c *fiber.Ctx) error {
	db := database.GetDB()

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var messages []models.ContactMessage
	if err := db.Order("created_at DESC").Limit(limit).Find(&messages).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch messages"})
	}

	return c.JSON(fiber.Map{"success": true, "messages": messages})
}
