package progressRoutes

import (
	progressController "chainlearn/controllers/progress"
	progressValidator "chainlearn/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up enrollment and completion routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/progress")

	progressGroup.Post("/enroll", progressValidator.Enroll(), progressController.Enroll)
	progressGroup.Post("/complete-lesson", progressValidator.CompleteLesson(), progressController.CompleteLesson)
	progressGroup.Post("/complete-quiz", progressValidator.CompleteQuiz(), progressController.CompleteQuiz)
	progressGroup.Get("/:userId", progressController.GetProgress)
}
