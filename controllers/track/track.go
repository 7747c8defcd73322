package trackController

import (
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllTracks lists every track, newest first
func GetAllTracks(c *fiber.Ctx) error {
	var tracks []models.Track
	if err := database.Database.Db.Order("created_at desc").Find(&tracks).Error; err != nil {
		log.Printf("Error fetching tracks: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"tracks": tracks,
	})
}

// GetTrackByID returns a track with its lessons in display order
func GetTrackByID(c *fiber.Ctx) error {
	trackID := c.Params("trackId")
	db := database.Database.Db

	var track models.Track
	if err := db.Where("id = ?", trackID).First(&track).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Track not found")
		}
		log.Printf("Error fetching track %s: %v", trackID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	var lessons []models.Lesson
	if err := db.Where("track_id = ?", trackID).Order("order_index asc").Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons for track %s: %v", trackID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"track":   track,
		"lessons": lessons,
	})
}

// GetLessonByID returns a lesson with its quiz, when one exists
func GetLessonByID(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Lesson not found")
		}
		log.Printf("Error fetching lesson %s: %v", lessonID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	// Zero-or-one quiz per lesson; absent reads as null
	var quiz *models.Quiz
	var found models.Quiz
	err := db.Where("lesson_id = ?", lessonID).First(&found).Error
	if err == nil {
		quiz = &found
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Error fetching quiz for lesson %s: %v", lessonID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"lesson": lesson,
		"quiz":   quiz,
	})
}
