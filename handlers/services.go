// handlers/services.go - Service wiring for the handler layer
package handlers

import (
	"tastybook/database"
	"tastybook/services"
)

var (
	pointsService      *services.PointsService
	ruleEngine         *services.RuleEngine
	approvalService    *services.ApprovalService
	leaderboardService *services.LeaderboardService
)

// InitServices wires the core services against the shared database handle.
// Must be called after database.InitDB().
func InitServices() {
	db := database.GetDB()
	loc := services.AppTimezone()

	pointsService = services.NewPointsService(db)
	ruleEngine = services.NewRuleEngine(db, pointsService, loc)
	approvalService = services.NewApprovalService(db, pointsService, ruleEngine)
	leaderboardService = services.NewLeaderboardService(db, loc)
}

func badgeFor(total int) string {
	return services.BadgeForPoints(total)
}
