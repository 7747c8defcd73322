package authController

import (
	"chainlearn/database"
	"chainlearn/middleware"
	"chainlearn/models"
	"chainlearn/utils"
	authValidator "chainlearn/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login finds or creates the user for a wallet address and returns a signed token.
// The wallet provider itself has already authenticated the address; we only
// map it to a user row.
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	db := database.Database.Db

	var user models.User
	err := db.Where("wallet_address = ?", reqData.WalletAddress).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{WalletAddress: reqData.WalletAddress}
		if err := db.Create(&user).Error; err != nil {
			// A concurrent first login may have created the row already
			if lookupErr := db.Where("wallet_address = ?", reqData.WalletAddress).First(&user).Error; lookupErr != nil {
				log.Printf("Error creating user for wallet %s: %v", reqData.WalletAddress, err)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
			}
		} else {
			// Best-effort profile prefill from the wallet provider
			go prefillProfile(user.ID, user.WalletAddress)
		}
	} else if err != nil {
		log.Printf("Error looking up wallet %s: %v", reqData.WalletAddress, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	token, err := middleware.GenerateJWT(user.ID, user.WalletAddress)
	if err != nil {
		log.Printf("Error signing token for user %s: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// prefillProfile copies provider profile data onto a fresh user row.
// Never overwrites fields the user has already set.
func prefillProfile(userID, walletAddress string) {
	profile := utils.FetchWalletProfile(walletAddress)
	if profile == nil {
		return
	}

	updates := map[string]interface{}{}
	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return
	}
	if user.Username == "" && profile.Username != "" {
		updates["username"] = profile.Username
	}
	if user.Email == "" && profile.Email != "" {
		updates["email"] = profile.Email
	}
	if user.ProfileImage == "" && profile.Avatar != "" {
		updates["profile_image"] = profile.Avatar
	}
	if len(updates) == 0 {
		return
	}
	if err := database.Database.Db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		log.Printf("Error prefilling profile for %s: %v", walletAddress, err)
	}
}

// GetUserByWallet fetches a user by wallet address
func GetUserByWallet(c *fiber.Ctx) error {
	walletAddress := c.Params("walletAddress")

	var user models.User
	if err := database.Database.Db.Where("wallet_address = ?", walletAddress).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error fetching user by wallet %s: %v", walletAddress, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// UpdateProfile updates the mutable profile fields and returns the fresh row
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")
	reqData := c.Locals("validatedProfile").(*authValidator.UpdateProfileRequest)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error fetching user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"username":      reqData.Username,
		"email":         reqData.Email,
		"profile_image": reqData.ProfileImage,
	}).Error; err != nil {
		log.Printf("Error updating user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		log.Printf("Error reloading user %s: %v", userID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Database error")
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}
