// models/user.go
package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	Email        *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password     string  `gorm:"not null" json:"-"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfileImage string  `json:"profile_image"`
	Bio          string  `json:"bio"`
	Role         string  `gorm:"default:'user';size:20" json:"role"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	// PointsTotal is the cached sum of the user's points_transactions rows.
	// It is only ever written inside the same transaction as a ledger insert.
	PointsTotal int `gorm:"default:0" json:"points_total"`

	// Password reset
	ResetToken       string     `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Recipes      []Recipe          `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserAchievement records a date-keyed achievement such as "streak5 achieved
// on day D". The unique index on (user_id, name, achieved_on) is the guard
// that keeps a streak bonus from being granted twice for the same day.
type UserAchievement struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:ux_user_achievement,priority:1" json:"user_id"`
	Name       string    `gorm:"not null;size:50;uniqueIndex:ux_user_achievement,priority:2" json:"name"`
	AchievedOn string    `gorm:"not null;size:10;uniqueIndex:ux_user_achievement,priority:3" json:"achieved_on"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
