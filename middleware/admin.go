package middleware

import (
	"chainlearn/database"
	"chainlearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminMiddleware checks that the authenticated wallet belongs to an admin user.
// Runs after JWTMiddleware, which stores the wallet address in Locals.
func AdminMiddleware(c *fiber.Ctx) error {
	walletAddress, ok := c.Locals("walletAddress").(string)
	if !ok || walletAddress == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin models.AdminUser
	err := database.Database.Db.Where("wallet_address = ?", walletAddress).First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrorResponse(c, fiber.StatusForbidden, "Admin access required")
		}
		return ErrorResponse(c, fiber.StatusInternalServerError, "Server error while checking permissions")
	}

	c.Locals("adminRole", admin.Role)
	return c.Next()
}
