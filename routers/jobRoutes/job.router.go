package jobRoutes

import (
	jobController "chainlearn/controllers/job"
	jobValidator "chainlearn/validators/job"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes sets up the job board routes.
// Static segments are registered before the :jobId wildcard.
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/api/jobs")

	jobGroup.Get("/", jobController.ListJobs)
	jobGroup.Post("/apply", jobValidator.ApplyJob(), jobController.ApplyJob)
	jobGroup.Post("/save", jobValidator.SaveJob(), jobController.SaveJob)
	jobGroup.Get("/saved/:userId", jobController.GetSavedJobs)
	jobGroup.Get("/:jobId", jobController.GetJobByID)
}
