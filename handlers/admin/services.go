// handlers/admin/services.go - Service wiring for the admin panel
package admin

import (
	"errors"

	"tastybook/database"
	"tastybook/services"

	"github.com/gofiber/fiber/v2"
)

var approvalService *services.ApprovalService

// InitServices wires the moderation services. Must be called after
// database.InitDB().
func InitServices() {
	db := database.GetDB()
	points := services.NewPointsService(db)
	rules := services.NewRuleEngine(db, points, services.AppTimezone())
	approvalService = services.NewApprovalService(db, points, rules)
}

// moderationError maps service errors onto responses. Anything unexpected
// is reported as a generic failure: the transaction already rolled back, so
// the recipe is still in its prior state.
func moderationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found"})
	case errors.Is(err, services.ErrNotAdmin):
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Admin privileges required"})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Recipe is not in a state that allows this action"})
	default:
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Could not complete action"})
	}
}
