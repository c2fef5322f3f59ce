// handlers/leaderboard.go
package handlers

import (
	"tastybook/services"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the top chefs of the current calendar month:
// points earned this month per user, with the all-time total as tie-break.
// GET /api/leaderboard?limit=5
func GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", services.DefaultLeaderboardSize)
	if limit < 1 || limit > 50 {
		limit = services.DefaultLeaderboardSize
	}

	entries, err := leaderboardService.TopChefsOfMonth(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch leaderboard",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"leaders": entries,
		"limit":   limit,
	})
}
