package adminRoutes

import (
	adminController "chainlearn/controllers/admin"
	"chainlearn/middleware"
	adminValidator "chainlearn/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the staff-only management routes.
// Every route requires a valid token whose wallet is in adminUsers.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Post("/tracks", adminValidator.CreateTrack(), adminController.CreateTrack)
	adminGroup.Put("/tracks/:trackId", adminValidator.UpdateTrack(), adminController.UpdateTrack)
	adminGroup.Post("/lessons", adminValidator.CreateLesson(), adminController.CreateLesson)
	adminGroup.Post("/quizzes", adminValidator.CreateQuiz(), adminController.CreateQuiz)
	adminGroup.Post("/jobs", adminValidator.CreateJob(), adminController.CreateJob)
	adminGroup.Get("/stats", adminController.GetStats)
}
