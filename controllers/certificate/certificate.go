package certificateController

import (
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	"chainlearn/utils"
	certificateValidator "chainlearn/validators/certificate"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IssueCertificate appends a certificate for a (user, track) pair.
// Certificates are append-only; re-issuing creates another row.
func IssueCertificate(c *fiber.Ctx) error {
	reqData := c.Locals("validatedIssue").(*certificateValidator.IssueRequest)
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

	certificate := models.Certificate{
		UserID:  reqData.UserID,
		TrackID: reqData.TrackID,
	}
	if err := db.Create(&certificate).Error; err != nil {
		log.Printf("Error issuing certificate: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Certificate issuance failed")
	}

	go utils.SendCertificateEmail(user.Email, user.Username, track.Title, certificate.ID)

	return c.JSON(fiber.Map{
		"certificate": certificate,
	})
}

// GetUserCertificates lists every certificate a user holds
func GetUserCertificates(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var certificates []models.Certificate
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&certificates).Error; err != nil {
		log.Printf("Error fetching certificates for user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"certificates": certificates,
	})
}
