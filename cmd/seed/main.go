package main

import (
	"log"
	"os"

	"tastybook/database"
	"tastybook/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Breakfast", "Lunch", "Dinner", "Desserts", "Appetizers",
	"Soups", "Salads", "Baking", "Drinks", "Vegetarian",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	db := database.GetDB()

	seedCategories(db)
	seedAdmin(db)

	log.Println("✅ Seeding complete")
}

func seedCategories(db *gorm.DB) {
	for _, name := range categoryNames {
		var existing models.Category
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			log.Fatal("Failed to seed category:", err)
		}
		log.Printf("✅ Created category: %s", name)
	}
}

// seedAdmin creates the initial admin account. Credentials come from
// ADMIN_USERNAME / ADMIN_PASSWORD; nothing is created when they are unset.
func seedAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME / ADMIN_PASSWORD not set, skipping admin account")
		return
	}
	if len(password) < 8 {
		log.Fatal("ADMIN_PASSWORD must be at least 8 characters long")
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		if existing.Role != models.RoleAdmin {
			if err := db.Model(&existing).Update("role", models.RoleAdmin).Error; err != nil {
				log.Fatal("Failed to promote admin account:", err)
			}
			log.Printf("✅ Promoted existing user to admin: %s", username)
		}
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	admin := models.User{
		Username: username,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin account:", err)
	}
	log.Printf("✅ Created admin account: %s", username)
}
