// handlers/contact.go
package handlers

import (
	"tastybook/database"
	"tastybook/models"
	"tastybook/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitContactMessage stores a message from the public contact form
func SubmitContactMessage(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if errs := utils.RequiredFields(map[string]string{
		"Name":    req.Name,
		"Message": req.Message,
	}); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "errors": errs})
	}
	if !utils.ValidEmail(req.Email) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "A valid email address is required"})
	}

	db := database.GetDB()

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := db.Create(&msg).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to send message"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "message": "Thanks for reaching out! We'll get back to you soon."})
}
