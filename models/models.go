// models/models.go - Favorites, reviews and contact messages
package models

import (
	"time"
)

// Favorite relates one user to one recipe. The unique index on
// (user_id, recipe_id) makes existence a toggle, never a count.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:ux_favorite_user_recipe,priority:1"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:ux_favorite_user_recipe,priority:2;index"`
	Recipe    *Recipe   `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
	CreatedAt time.Time `json:"created_at"`
}

// Review carries a 1..5 rating and a comment. One review per (user, recipe);
// a second submission updates the existing row.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:ux_review_user_recipe,priority:1"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:ux_review_user_recipe,priority:2;index"`
	Recipe    *Recipe   `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessage is a message from the public contact form, shown in the
// admin panel.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;size:255"`
	Subject   string    `json:"subject" gorm:"size:200"`
	Message   string    `json:"message" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (Review) TableName() string {
	return "reviews"
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
