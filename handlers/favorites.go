// handlers/favorites.go
package handlers

import (
	"tastybook/database"
	"tastybook/middleware"
	"tastybook/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ToggleFavorite adds or removes a favorite for the current user. The add
// path notifies the rule engine with (recipe, owner) so the 10-favorites
// bonus fires inside the same transaction as the insert. Removal never
// claws points back.
func ToggleFavorite(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	db := database.GetDB()

	var recipe models.Recipe
	if err := db.First(&recipe, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found"})
	}

	var favorited bool
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		findErr := tx.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).First(&existing).Error

		if findErr == nil {
			favorited = false
			return tx.Delete(&existing).Error
		}

		favorite := models.Favorite{UserID: userID, RecipeID: recipe.ID}
		if err := tx.Create(&favorite).Error; err != nil {
			return err
		}
		favorited = true

		return ruleEngine.FavoriteAddedTx(tx, recipe.ID, recipe.UserID)
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update favorites"})
	}

	message := "Removed from favorites."
	if favorited {
		message = "Added to favorites."
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"favorited": favorited,
		"message":   message,
	})
}

// GetFavorites lists the current user's favorite recipes
func GetFavorites(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	db := database.GetDB()

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 12)
	if limit < 1 || limit > 50 {
		limit = 12
	}
	offset := (page - 1) * limit

	var total int64
	db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total)

	var favorites []models.Favorite
	err = db.Preload("Recipe").Preload("Recipe.User").Preload("Recipe.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&favorites).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch favorites"})
	}

	for i := range favorites {
		if favorites[i].Recipe != nil {
			sanitizeRecipeUser(favorites[i].Recipe)
		}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"favorites": favorites,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}
