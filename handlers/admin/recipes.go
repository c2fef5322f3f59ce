// handlers/admin/recipes.go - Recipe moderation
package admin

import (
	"tastybook/database"
	"tastybook/middleware"
	"tastybook/models"

	"github.com/gofiber/fiber/v2"
)

// GetPendingRecipes lists recipes awaiting moderation, oldest first
func GetPendingRecipes(c *fiber.Ctx) error {
	db := database.GetDB()

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var pending []models.Recipe
	err := db.Preload("User").Preload("Category").
		Where("approval_status = ?", models.ApprovalPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&pending).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch pending recipes"})
	}

	for i := range pending {
		if pending[i].User != nil {
			pending[i].User.Password = ""
		}
	}

	return c.JSON(fiber.Map{"success": true, "recipes": pending})
}

// GetApprovedRecipes lists recently approved recipes
func GetApprovedRecipes(c *fiber.Ctx) error {
	db := database.GetDB()

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var approved []models.Recipe
	err := db.Preload("User").Preload("Category").
		Where("approval_status = ?", models.ApprovalApproved).
		Order("created_at DESC").
		Limit(limit).
		Find(&approved).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch approved recipes"})
	}

	for i := range approved {
		if approved[i].User != nil {
			approved[i].User.Password = ""
		}
	}

	return c.JSON(fiber.Map{"success": true, "recipes": approved})
}

// ApproveRecipe publishes a pending recipe and awards its owner.
// POST /api/admin/recipes/:id/approve
func ApproveRecipe(c *fiber.Ctx) error {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	if err := approvalService.Approve(uint(id), adminID); err != nil {
		return moderationError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Recipe approved."})
}

// RejectRecipe marks a pending recipe rejected.
// POST /api/admin/recipes/:id/reject
func RejectRecipe(c *fiber.Ctx) error {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	if err := approvalService.Reject(uint(id), adminID); err != nil {
		return moderationError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Recipe rejected."})
}

// MarkTopOfWeek flags a recipe as top of the week and awards its owner.
// POST /api/admin/recipes/:id/top-of-week
func MarkTopOfWeek(c *fiber.Ctx) error {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	if err := approvalService.MarkTopOfWeek(uint(id), adminID); err != nil {
		return moderationError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Marked as Top Recipe of the Week."})
}

// MarkGood tags an approved recipe with the good quality label.
// POST /api/admin/recipes/:id/good
func MarkGood(c *fiber.Ctx) error {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	if err := approvalService.MarkGood(uint(id), adminID); err != nil {
		return moderationError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Marked recipe as Good."})
}

// UpdateRecipeFlags toggles editorial flags on a recipe.
// PUT /api/admin/recipes/:id/flags
func UpdateRecipeFlags(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	var req struct {
		IsFeatured *bool `json:"is_featured"`
		IsBest     *bool `json:"is_best"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()

	var recipe models.Recipe
	if err := db.First(&recipe, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found"})
	}

	updates := map[string]interface{}{}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.IsBest != nil {
		updates["is_best"] = *req.IsBest
	}
	if len(updates) == 0 {
		return c.JSON(fiber.Map{"success": true, "recipe": recipe})
	}

	if err := db.Model(&recipe).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update recipe"})
	}

	return c.JSON(fiber.Map{"success": true, "recipe": recipe})
}
