// handlers/recipes.go
package handlers

import (
	"tastybook/database"
	"tastybook/middleware"
	"tastybook/models"
	"tastybook/utils"

	"github.com/gofiber/fiber/v2"
)

type RecipeRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepTime     int    `json:"prep_time"`
	CookTime     int    `json:"cook_time"`
	Servings     int    `json:"servings"`
	Difficulty   string `json:"difficulty"`
	CategoryID   uint   `json:"category_id"`
	ImageURL     string `json:"image_url"`
	Tips         string `json:"tips"`
	Tags         string `json:"tags"`
}

func validateRecipe(req RecipeRequest) []string {
	errs := utils.RequiredFields(map[string]string{
		"Title":        req.Title,
		"Ingredients":  req.Ingredients,
		"Instructions": req.Instructions,
	})

	if len(req.Title) > 0 && len(req.Title) < 3 {
		errs = append(errs, "Recipe title must be at least 3 characters long.")
	}
	if req.Ingredients != "" && utils.NonEmptyLines(req.Ingredients) < 2 {
		errs = append(errs, "Please provide at least 2 ingredients.")
	}
	if req.Instructions != "" && utils.NonEmptyLines(req.Instructions) < 2 {
		errs = append(errs, "Please provide at least 2 cooking steps.")
	}
	if req.CategoryID == 0 {
		errs = append(errs, "Please select a category.")
	}
	if req.Servings < 1 {
		errs = append(errs, "Servings must be at least 1.")
	}
	switch req.Difficulty {
	case "easy", "medium", "hard":
	default:
		errs = append(errs, "Invalid difficulty level.")
	}
	return errs
}

// GetRecipes lists published recipes with pagination, search and category
// filter. GET /api/recipes?page=1&limit=12&search=&category=
func GetRecipes(c *fiber.Ctx) error {
	db := database.GetDB()

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 12)
	if limit < 1 || limit > 50 {
		limit = 12
	}
	search := c.Query("search", "")
	categoryID := c.QueryInt("category", 0)

	offset := (page - 1) * limit

	query := db.Model(&models.Recipe{}).Where("is_published = ?", true)
	if search != "" {
		query = query.Where("title LIKE ? OR description LIKE ? OR tags LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	query.Count(&total)

	var recipes []models.Recipe
	err := query.Preload("User").Preload("Category").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch recipes"})
	}

	for i := range recipes {
		sanitizeRecipeUser(&recipes[i])
	}

	return c.JSON(fiber.Map{
		"success": true,
		"recipes": recipes,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetRecipe returns one published recipe with its reviews, average rating
// and favorite count. Owners and admins can also see their unpublished ones.
func GetRecipe(c *fiber.Ctx) error {
	db := database.GetDB()
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	var recipe models.Recipe
	if err := db.Preload("User").Preload("Category").First(&recipe, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found"})
	}

	if !recipe.IsPublished {
		userID, _ := middleware.GetUserID(c)
		if userID != recipe.UserID && !middleware.IsAdmin(c) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found"})
		}
	}
	sanitizeRecipeUser(&recipe)

	var reviews []models.Review
	db.Preload("User").Where("recipe_id = ?", recipe.ID).Order("created_at DESC").Find(&reviews)
	for i := range reviews {
		if reviews[i].User != nil {
			reviews[i].User.Password = ""
			reviews[i].User.Email = nil
		}
	}

	var ratingData struct {
		AvgRating    float64 `json:"avg_rating"`
		TotalReviews int64   `json:"total_reviews"`
	}
	db.Model(&models.Review{}).Where("recipe_id = ?", recipe.ID).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total_reviews").
		Scan(&ratingData)

	var favoriteCount int64
	db.Model(&models.Favorite{}).Where("recipe_id = ?", recipe.ID).Count(&favoriteCount)

	isFavorited := false
	if userID, err := middleware.GetUserID(c); err == nil {
		var n int64
		db.Model(&models.Favorite{}).Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).Count(&n)
		isFavorited = n > 0
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"recipe":         recipe,
		"reviews":        reviews,
		"avg_rating":     ratingData.AvgRating,
		"total_reviews":  ratingData.TotalReviews,
		"favorite_count": favoriteCount,
		"is_favorited":   isFavorited,
	})
}

// CreateRecipe submits a new recipe; it enters moderation as pending and
// stays unpublished until an admin approves it.
func CreateRecipe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errs := validateRecipe(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "errors": errs})
	}

	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		CategoryID:   req.CategoryID,
		ImageURL:     req.ImageURL,
		Tips:         req.Tips,
		Tags:         req.Tags,
	}

	if err := approvalService.Submit(userID, &recipe); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create recipe"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"recipe":  recipe,
		"message": "Recipe submitted! Awaiting admin approval.",
	})
}

// UpdateRecipe edits an owned recipe's content. Moderation state is not
// touched here; only admins move recipes between states.
func UpdateRecipe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	db := database.GetDB()

	var recipe models.Recipe
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found or you do not have permission to edit it"})
	}

	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errs := validateRecipe(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "errors": errs})
	}

	err = db.Model(&recipe).Updates(map[string]interface{}{
		"title":        req.Title,
		"description":  req.Description,
		"ingredients":  req.Ingredients,
		"instructions": req.Instructions,
		"prep_time":    req.PrepTime,
		"cook_time":    req.CookTime,
		"servings":     req.Servings,
		"difficulty":   req.Difficulty,
		"category_id":  req.CategoryID,
		"image_url":    req.ImageURL,
		"tips":         req.Tips,
		"tags":         req.Tags,
	}).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update recipe"})
	}

	return c.JSON(fiber.Map{"success": true, "recipe": recipe, "message": "Recipe updated successfully!"})
}

// DeleteRecipe removes an owned recipe
func DeleteRecipe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid recipe ID"})
	}

	db := database.GetDB()

	var recipe models.Recipe
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Recipe not found or you do not have permission to delete it"})
	}

	if err := db.Delete(&recipe).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete recipe"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Recipe deleted."})
}

// GetCategories lists recipe categories
func GetCategories(c *fiber.Ctx) error {
	db := database.GetDB()

	var categories []models.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch categories"})
	}

	return c.JSON(fiber.Map{"success": true, "categories": categories})
}

func sanitizeRecipeUser(recipe *models.Recipe) {
	if recipe.User != nil {
		recipe.User.Password = ""
		recipe.User.Email = nil
	}
}
