package adminController

import (
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	adminValidator "chainlearn/validators/admin"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTrack creates a learning track
func CreateTrack(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateTrack").(*adminValidator.CreateTrackRequest)

	track := models.Track{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Difficulty:   reqData.Difficulty,
		TotalLessons: reqData.TotalLessons,
		IsPaid:       reqData.IsPaid,
		Price:        reqData.Price,
	}
	if track.Difficulty == "" {
		track.Difficulty = "beginner"
	}

	if err := database.Database.Db.Create(&track).Error; err != nil {
		log.Printf("Error creating track: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create track")
	}

	return c.JSON(fiber.Map{
		"message": "Track created successfully",
		"trackId": track.ID,
	})
}

// UpdateTrack overwrites the editable track fields
func UpdateTrack(c *fiber.Ctx) error {
	trackID := c.Params("trackId")
	reqData := c.Locals("validatedUpdateTrack").(*adminValidator.UpdateTrackRequest)
	db := database.Database.Db

	var track models.Track
	if err := db.Where("id = ?", trackID).First(&track).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Track not found")
		}
		log.Printf("Error fetching track %s: %v", trackID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"description": reqData.Description,
		"category":    reqData.Category,
	}
	if reqData.Difficulty != "" {
		updates["difficulty"] = reqData.Difficulty
	}

	if err := db.Model(&track).Updates(updates).Error; err != nil {
		log.Printf("Error updating track %s: %v", trackID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update track")
	}

	return c.JSON(fiber.Map{
		"message": "Track updated successfully",
	})
}

// CreateLesson creates a lesson inside an existing track
func CreateLesson(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateLesson").(*adminValidator.CreateLessonRequest)
	db := database.Database.Db

	var track models.Track
	if err := db.Where("id = ?", reqData.TrackID).First(&track).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Track not found")
		}
		log.Printf("Error fetching track %s: %v", reqData.TrackID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	lesson := models.Lesson{
		TrackID:     reqData.TrackID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Content:     reqData.Content,
		VideoURL:    reqData.VideoURL,
		Duration:    reqData.Duration,
		OrderIndex:  reqData.OrderIndex,
		Level:       reqData.Level,
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return c.JSON(fiber.Map{
		"message":  "Lesson created successfully",
		"lessonId": lesson.ID,
	})
}

// CreateQuiz attaches a quiz to an existing lesson
func CreateQuiz(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateQuiz").(*adminValidator.CreateQuizRequest)
	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ?", reqData.LessonID).First(&lesson).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found")
		}
		log.Printf("Error fetching lesson %s: %v", reqData.LessonID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	quiz := models.Quiz{
		LessonID:     reqData.LessonID,
		Title:        reqData.Title,
		Questions:    datatypes.JSON(reqData.Questions),
		PassingScore: reqData.PassingScore,
	}

	if err := db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return c.JSON(fiber.Map{
		"message": "Quiz created successfully",
		"quizId":  quiz.ID,
	})
}

// CreateJob posts a job to the board
func CreateJob(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateJob").(*adminValidator.CreateJobRequest)

	skills := reqData.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid required skills")
	}

	job := models.Job{
		Title:          reqData.Title,
		Company:        reqData.Company,
		Description:    reqData.Description,
		Category:       reqData.Category,
		Location:       reqData.Location,
		SalaryMin:      reqData.SalaryMin,
		SalaryMax:      reqData.SalaryMax,
		RequiredSkills: datatypes.JSON(skillsJSON),
		ApplyURL:       reqData.ApplyURL,
		IsSponsored:    reqData.IsSponsored,
		IsActive:       true,
	}
	if job.Location == "" {
		job.Location = "Remote"
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		log.Printf("Error creating job: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to post job")
	}

	return c.JSON(fiber.Map{
		"message": "Job posted successfully",
		"jobId":   job.ID,
	})
}

// GetStats reports aggregate counts. Each count is an independent
// point-in-time read; there is no cross-count consistency guarantee.
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalTracks, totalEnrollments, totalJobs int64

	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Error counting users: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}
	if err := db.Model(&models.Track{}).Count(&totalTracks).Error; err != nil {
		log.Printf("Error counting tracks: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}
	if err := db.Model(&models.UserProgress{}).Count(&totalEnrollments).Error; err != nil {
		log.Printf("Error counting enrollments: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}
	if err := db.Model(&models.Job{}).Count(&totalJobs).Error; err != nil {
		log.Printf("Error counting jobs: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"stats": fiber.Map{
			"totalUsers":       totalUsers,
			"totalTracks":      totalTracks,
			"totalEnrollments": totalEnrollments,
			"totalJobs":        totalJobs,
		},
	})
}
