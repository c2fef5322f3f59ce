// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"tastybook/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Recipe{},
		&models.Favorite{},
		&models.Review{},
		&models.PointsTransaction{},
		&models.UserAchievement{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags.
// The unique index on points_transactions(user_id, recipe_id, action) is load
// bearing: two racing awards for the same key must collapse to one row.
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// Ledger uniqueness: at most one entry per (user, recipe, action).
	// Streak awards carry a NULL recipe_id and are guarded by
	// user_achievements instead, so NULLs escaping this index is intended.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS ux_points_user_recipe_action ON points_transactions(user_id, recipe_id, action)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_points_created ON points_transactions(created_at)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_points_user ON points_transactions(user_id)")

	// Favorite and review pair uniqueness
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS ux_favorite_user_recipe ON favorites(user_id, recipe_id)")
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS ux_review_user_recipe ON reviews(user_id, recipe_id)")

	// Streak achievement guard
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS ux_user_achievement ON user_achievements(user_id, name, achieved_on)")

	// Recipe listing paths
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_user ON recipes(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_status ON recipes(approval_status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_published ON recipes(is_published)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_recipes_approved_at ON recipes(approved_at)")

	log.Println("✅ Indexes created successfully")
}
