// models/recipe.go
package models

import (
	"time"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const QualityGood = "good"

// Recipe is owned by exactly one user and moves through
// pending -> approved | rejected under admin control. is_published is true
// only while approval_status is approved.
type Recipe struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	User         *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title        string `json:"title" gorm:"not null;size:200"`
	Description  string `json:"description" gorm:"type:text"`
	Ingredients  string `json:"ingredients" gorm:"not null;type:text"`
	Instructions string `json:"instructions" gorm:"not null;type:text"`
	PrepTime     int    `json:"prep_time" gorm:"default:0"`
	CookTime     int    `json:"cook_time" gorm:"default:0"`
	Servings     int    `json:"servings" gorm:"default:1"`
	Difficulty   string `json:"difficulty" gorm:"default:'easy';size:20"` // easy, medium, hard
	CategoryID   uint   `json:"category_id" gorm:"index"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL     string `json:"image_url" gorm:"size:255"`
	Tips         string `json:"tips" gorm:"type:text"`
	Tags         string `json:"tags" gorm:"size:255"`

	// Moderation state
	ApprovalStatus string     `json:"approval_status" gorm:"default:'pending';size:20;index"`
	IsPublished    bool       `json:"is_published" gorm:"default:false;index"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovedBy     *uint      `json:"approved_by,omitempty"`

	// Editorial flags
	IsFeatured   bool       `json:"is_featured" gorm:"default:false"`
	IsBest       bool       `json:"is_best" gorm:"default:false"`
	IsGood       bool       `json:"is_good" gorm:"default:false"`
	IsTopOfWeek  bool       `json:"is_top_of_week" gorm:"default:false"`
	TopOfWeekAt  *time.Time `json:"top_of_week_at,omitempty"`
	Quality      string     `json:"quality" gorm:"size:20"` // "good" or unset

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:RecipeID"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:RecipeID"`
}

// Category groups recipes for browsing.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex;size:100"`
	CreatedAt time.Time `json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (Category) TableName() string {
	return "categories"
}
