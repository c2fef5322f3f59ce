// handlers/users.go
package handlers

import (
	"tastybook/database"
	"tastybook/middleware"
	"tastybook/models"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser returns the authenticated user's profile with point total,
// badge tier and recent ledger entries
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	ledger, err := pointsService.Ledger(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch point history"})
	}

	var achievements []models.UserAchievement
	db.Where("user_id = ?", userID).Order("created_at DESC").Find(&achievements)

	return c.JSON(fiber.Map{
		"success":      true,
		"user":         userInfo(user),
		"bio":          user.Bio,
		"ledger":       ledger,
		"achievements": achievements,
	})
}

// UpdateCurrentUser updates profile fields
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req struct {
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		Bio          string `json:"bio"`
		ProfileImage string `json:"profile_image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	err = db.Model(&user).Updates(map[string]interface{}{
		"first_name":    req.FirstName,
		"last_name":     req.LastName,
		"bio":           req.Bio,
		"profile_image": req.ProfileImage,
	}).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"success": true, "user": userInfo(user)})
}

// GetUserStats returns dashboard counters for the current user
func GetUserStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()

	var recipeCount, publishedCount, pendingCount, favoriteCount, reviewCount int64
	db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&recipeCount)
	db.Model(&models.Recipe{}).Where("user_id = ? AND is_published = ?", userID, true).Count(&publishedCount)
	db.Model(&models.Recipe{}).Where("user_id = ? AND approval_status = ?", userID, models.ApprovalPending).Count(&pendingCount)
	db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&favoriteCount)
	db.Model(&models.Review{}).Where("user_id = ?", userID).Count(&reviewCount)

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"recipe_count":      recipeCount,
		"published_count":   publishedCount,
		"pending_count":     pendingCount,
		"favorite_count":    favoriteCount,
		"review_count":      reviewCount,
		"points_total":      user.PointsTotal,
		"badge":             badgeFor(user.PointsTotal),
	})
}

// GetUserProfile returns a public profile
func GetUserProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user ID"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("id = ? AND is_active = ?", id, true).First(&user).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	var recipeCount int64
	db.Model(&models.Recipe{}).Where("user_id = ? AND is_published = ?", user.ID, true).Count(&recipeCount)

	return c.JSON(fiber.Map{
		"success":       true,
		"id":            user.ID,
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"profile_image": user.ProfileImage,
		"bio":           user.Bio,
		"points_total":  user.PointsTotal,
		"badge":         badgeFor(user.PointsTotal),
		"recipe_count":  recipeCount,
	})
}

// GetMyRecipes lists the current user's recipes in every approval state
func GetMyRecipes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()

	var recipes []models.Recipe
	err = db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch recipes"})
	}

	return c.JSON(fiber.Map{"success": true, "recipes": recipes})
}
