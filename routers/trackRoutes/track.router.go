package trackRoutes

import (
	trackController "chainlearn/controllers/track"

	"github.com/gofiber/fiber/v2"
)

// SetupTrackRoutes sets up the read-only catalog routes
func SetupTrackRoutes(app *fiber.App) {
	app.Get("/api/tracks", trackController.GetAllTracks)
	app.Get("/api/tracks/:trackId", trackController.GetTrackByID)
	app.Get("/api/lessons/:lessonId", trackController.GetLessonByID)
}
