package authRoutes

import (
	authController "chainlearn/controllers/auth"
	authValidator "chainlearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up wallet login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/user/:walletAddress", authController.GetUserByWallet)
	authGroup.Put("/user/:userId", authValidator.UpdateProfile(), authController.UpdateProfile)
}
