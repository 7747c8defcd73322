package jobController

import (
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	jobValidator "chainlearn/validators/job"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListJobs returns active jobs, optionally filtered by exact category and
// a case-insensitive substring search across title, company and description
func ListJobs(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")

	db := database.Database.Db.Model(&models.Job{}).Where("is_active = ?", true)

	if category != "" && category != "all" {
		db = db.Where("category = ?", category)
	}

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", term, term, term)
	}

	var jobs []models.Job
	if err := db.Order("created_at desc").Find(&jobs).Error; err != nil {
		log.Printf("Error fetching jobs: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"jobs": jobs,
	})
}

// GetJobByID returns one job posting
func GetJobByID(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	var job models.Job
	if err := database.Database.Db.Where("id = ?", jobID).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Job not found")
		}
		log.Printf("Error fetching job %s: %v", jobID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"job": job,
	})
}

// lookupApplicant checks the user exists and the job exists and is still active.
// Returns a non-nil response when the request cannot proceed.
func lookupApplicant(c *fiber.Ctx, userID, jobID string) error {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error looking up user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	var job models.Job
	if err := db.Where("id = ? AND is_active = ?", jobID, true).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Job not found")
		}
		log.Printf("Error looking up job %s: %v", jobID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return nil
}

// ApplyJob records an application. Applying twice creates two rows;
// re-application is a product decision left to the hiring side.
func ApplyJob(c *fiber.Ctx) error {
	reqData := c.Locals("validatedApply").(*jobValidator.JobActionRequest)

	if resp := lookupApplicant(c, reqData.UserID, reqData.JobID); resp != nil {
		return resp
	}

	application := models.JobApplication{
		UserID: reqData.UserID,
		JobID:  reqData.JobID,
	}
	if err := database.Database.Db.Create(&application).Error; err != nil {
		log.Printf("Error creating application: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Application failed")
	}

	return c.JSON(fiber.Map{
		"message":       "Applied successfully",
		"applicationId": application.ID,
	})
}

// SaveJob bookmarks a job for a user. The first save wins; later saves
// are silently ignored.
func SaveJob(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSave").(*jobValidator.JobActionRequest)

	if resp := lookupApplicant(c, reqData.UserID, reqData.JobID); resp != nil {
		return resp
	}

	db := database.Database.Db

	var existing models.SavedJob
	err := db.Where("user_id = ? AND job_id = ?", reqData.UserID, reqData.JobID).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{
			"message": "Job saved successfully",
		})
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking saved job: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	saved := models.SavedJob{
		UserID: reqData.UserID,
		JobID:  reqData.JobID,
	}
	if err := db.Create(&saved).Error; err != nil {
		// Concurrent save hit the unique index first; still a success
		if lookupErr := db.Where("user_id = ? AND job_id = ?", reqData.UserID, reqData.JobID).First(&existing).Error; lookupErr != nil {
			log.Printf("Error saving job: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save job")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Job saved successfully",
	})
}

// GetSavedJobs lists the jobs a user has bookmarked
func GetSavedJobs(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var jobs []models.Job
	if err := database.Database.Db.Model(&models.Job{}).
		Joins("INNER JOIN saved_jobs ON saved_jobs.job_id = jobs.id").
		Where("saved_jobs.user_id = ?", userID).
		Find(&jobs).Error; err != nil {
		log.Printf("Error fetching saved jobs for user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"savedJobs": jobs,
	})
}
