// models/points.go - Point ledger
package models

import (
	"time"
)

// Point-earning actions and their deltas.
const (
	ActionRecipeApproved   = "recipe_approved"
	ActionBonus10Favorites = "bonus_10_favorites"
	ActionStreak5Days      = "streak_5_days"
	ActionTopOfWeek        = "top_of_week"

	PointsRecipeApproved   = 10
	PointsBonus10Favorites = 20
	PointsStreak5Days      = 15
	PointsTopOfWeek        = 50
)

// PointsTransaction is one immutable point-earning event. Rows are created
// once per qualifying event and never mutated or deleted. The unique index on
// (user_id, recipe_id, action) is what makes retried or racing awards collapse
// to a single surviving row.
type PointsTransaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:ux_points_user_recipe_action,priority:1;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RecipeID  *uint     `json:"recipe_id,omitempty" gorm:"uniqueIndex:ux_points_user_recipe_action,priority:2"`
	Recipe    *Recipe   `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
	Action    string    `json:"action" gorm:"not null;size:50;uniqueIndex:ux_points_user_recipe_action,priority:3"`
	Points    int       `json:"points" gorm:"not null"`
	Meta      string    `json:"meta" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (PointsTransaction) TableName() string {
	return "points_transactions"
}
