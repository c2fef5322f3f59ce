// main.go
package main

import (
	"log"
	"os"
	"time"

	"tastybook/database"
	"tastybook/handlers"
	"tastybook/handlers/admin"
	"tastybook/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Wire core services
	handlers.InitServices()
	admin.InitServices()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/forgot-password", handlers.ForgotPassword)
	authGroup.Post("/reset-password", handlers.ResetPassword)

	// Public recipe browsing
	api.Get("/recipes", handlers.GetRecipes)
	api.Get("/recipes/:id", handlers.GetRecipe)
	api.Get("/categories", handlers.GetCategories)
	api.Get("/leaderboard", handlers.GetLeaderboard)
	api.Post("/contact", handlers.SubmitContactMessage)

	// Recipe authoring (require authentication)
	api.Post("/recipes", middleware.AuthMiddleware, handlers.CreateRecipe)
	api.Put("/recipes/:id", middleware.AuthMiddleware, handlers.UpdateRecipe)
	api.Delete("/recipes/:id", middleware.AuthMiddleware, handlers.DeleteRecipe)
	api.Post("/recipes/:id/reviews", middleware.AuthMiddleware, handlers.UpsertReview)
	api.Post("/recipes/:id/favorite", middleware.AuthMiddleware, handlers.ToggleFavorite)

	// User routes (require authentication)
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)
	userGroup.Get("/me/stats", handlers.GetUserStats)
	userGroup.Get("/me/recipes", handlers.GetMyRecipes)
	userGroup.Get("/me/favorites", handlers.GetFavorites)
	userGroup.Get("/:id", handlers.GetUserProfile)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Get("/stats", admin.GetStats)
	adminGroup.Get("/messages", admin.GetContactMessages)

	// Admin recipe moderation
	adminGroup.Get("/recipes/pending", admin.GetPendingRecipes)
	adminGroup.Get("/recipes/approved", admin.GetApprovedRecipes)
	adminGroup.Post("/recipes/:id/approve", admin.ApproveRecipe)
	adminGroup.Post("/recipes/:id/reject", admin.RejectRecipe)
	adminGroup.Post("/recipes/:id/top-of-week", admin.MarkTopOfWeek)
	adminGroup.Post("/recipes/:id/good", admin.MarkGood)
	adminGroup.Put("/recipes/:id/flags", admin.UpdateRecipeFlags)

	// Admin user management
	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Put("/users/:id", admin.UpdateUser)
	adminGroup.Post("/users/:id/deactivate", admin.DeactivateUser)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🕒 Timezone: %s", getEnv("APP_TIMEZONE", "UTC"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
