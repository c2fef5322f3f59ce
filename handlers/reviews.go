// handlers/reviews.go
package handlers

import (
	"strings"
	"time"

	"tastybook/database"
	"tastybook/middleware"
	"tastybook/models"

	"github.com/gofiber/fiber/v2"
)

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpsertReview creates or replaces the current user's review of a recipe.
// One review per (user, recipe); a second submission updates the first.
func UpsertReview(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Please select a valid rating."})
	}
	if strings.TrimSpace(req.Comment) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Please write a review comment."})
	}

	db := database.GetDB()

	var recipe models.Recipe
	if err := db.Where("id = ? AND is_published = ?", id, true).First(&recipe).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found"})
	}

	var review models.Review
	findErr := db.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).First(&review).Error

	if findErr == nil {
		err = db.Model(&review).Updates(map[string]interface{}{
			"rating":     req.Rating,
			"comment":    req.Comment,
			"updated_at": time.Now(),
		}).Error
	} else {
		review = models.Review{
			UserID:   userID,
			RecipeID: recipe.ID,
			Rating:   req.Rating,
			Comment:  req.Comment,
		}
		err = db.Create(&review).Error
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to submit review. Please try again."})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"review":  review,
		"message": "Thank you for your review!",
	})
}
