package progressController

import (
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	progressValidator "chainlearn/validators/progress"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// XP awards per completion event. A quiz scored at or above
// QuizHighScore earns the high tier, everything else the low tier.
const (
	LessonXP      = 10
	QuizXPHigh    = 25
	QuizXPLow     = 15
	QuizHighScore = 80
)

// Enroll creates the progress record for a (user, track) pair.
// Enrolling twice is a no-op that still reports success.
func Enroll(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnroll").(*progressValidator.EnrollRequest)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", reqData.UserID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error looking up user %s: %v", reqData.UserID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	var track models.Track
	if err := db.Where("id = ?", reqData.TrackID).First(&track).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Track not found")
		}
		log.Printf("Error looking up track %s: %v", reqData.TrackID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	var existing models.UserProgress
	err := db.Where("user_id = ? AND track_id = ?", reqData.UserID, reqData.TrackID).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{
			"message":    "Already enrolled",
			"progressId": existing.ID,
		})
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	progress := models.UserProgress{
		UserID:           reqData.UserID,
		TrackID:          reqData.TrackID,
		CompletedLessons: datatypes.JSON("[]"),
		CompletedQuizzes: datatypes.JSON("[]"),
	}
	if err := db.Create(&progress).Error; err != nil {
		// A concurrent enroll may have won the unique index; treat that as success
		if lookupErr := db.Where("user_id = ? AND track_id = ?", reqData.UserID, reqData.TrackID).First(&existing).Error; lookupErr == nil {
			return c.JSON(fiber.Map{
				"message":    "Already enrolled",
				"progressId": existing.ID,
			})
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Enrollment failed")
	}

	return c.JSON(fiber.Map{
		"message":    "Enrolled successfully",
		"progressId": progress.ID,
	})
}

// GetProgress returns every progress row for a user
func GetProgress(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var progress []models.UserProgress
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		log.Printf("Error fetching progress for user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"progress": progress,
	})
}

// CompleteLesson records a lesson completion and awards XP.
// The award is gated on the completed-set actually growing, so repeating
// the call neither grows the set nor grants XP again. Both XP counters
// move inside one transaction so they cannot drift apart.
func CompleteLesson(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCompleteLesson").(*progressValidator.CompleteLessonRequest)

	xpEarned := 0
	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	var progress models.UserProgress
	if err := tx.Where("user_id = ? AND track_id = ?", reqData.UserID, reqData.TrackID).First(&progress).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Progress not found")
		}
		log.Printf("Error fetching progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	if !progress.HasLesson(reqData.LessonID) {
		progress.AddLesson(reqData.LessonID)
		xpEarned = LessonXP

		updates := map[string]interface{}{
			"completed_lessons": progress.CompletedLessons,
			"total_xp":          gorm.Expr("total_xp + ?", xpEarned),
		}

		// Mark the track finished once every lesson is in the set
		var track models.Track
		if err := tx.Where("id = ?", reqData.TrackID).First(&track).Error; err == nil {
			if !progress.IsCompleted && track.TotalLessons > 0 && len(progress.LessonIDs()) >= track.TotalLessons {
				updates["is_completed"] = true
				updates["completion_date"] = time.Now()
			}
		}

		if err := tx.Model(&models.UserProgress{}).Where("id = ?", progress.ID).Updates(updates).Error; err != nil {
			tx.Rollback()
			log.Printf("Error updating progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
		}

		if err := tx.Model(&models.User{}).Where("id = ?", reqData.UserID).
			Update("xp", gorm.Expr("xp + ?", xpEarned)).Error; err != nil {
			tx.Rollback()
			log.Printf("Error updating user XP: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing lesson completion: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"message":  "Lesson marked complete",
		"xpEarned": xpEarned,
	})
}

// CompleteQuiz records a quiz completion. The score is caller-supplied
// and trusted; grading happens on the client. XP is tiered by score and
// gated the same way as lesson completion.
func CompleteQuiz(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCompleteQuiz").(*progressValidator.CompleteQuizRequest)

	xpEarned := 0
	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	var progress models.UserProgress
	if err := tx.Where("user_id = ? AND track_id = ?", reqData.UserID, reqData.TrackID).First(&progress).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Progress not found")
		}
		log.Printf("Error fetching progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	if !progress.HasQuiz(reqData.QuizID) {
		progress.AddQuiz(reqData.QuizID)
		if reqData.Score >= QuizHighScore {
			xpEarned = QuizXPHigh
		} else {
			xpEarned = QuizXPLow
		}

		if err := tx.Model(&models.UserProgress{}).Where("id = ?", progress.ID).Updates(map[string]interface{}{
			"completed_quizzes": progress.CompletedQuizzes,
			"total_xp":          gorm.Expr("total_xp + ?", xpEarned),
		}).Error; err != nil {
			tx.Rollback()
			log.Printf("Error updating progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
		}

		if err := tx.Model(&models.User{}).Where("id = ?", reqData.UserID).
			Update("xp", gorm.Expr("xp + ?", xpEarned)).Error; err != nil {
			tx.Rollback()
			log.Printf("Error updating user XP: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing quiz completion: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"message":  "Quiz completed",
		"xpEarned": xpEarned,
		"totalXP":  progress.TotalXP + xpEarned,
	})
}
