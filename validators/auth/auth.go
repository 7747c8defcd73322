package authValidator

import (
	"chainlearn/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// LoginRequest is the wallet login body
type LoginRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
}

// UpdateProfileRequest carries the mutable profile fields
type UpdateProfileRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email" validate:"omitempty,email"`
	ProfileImage string `json:"profileImage"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.WalletAddress = strings.TrimSpace(reqData.WalletAddress)
		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Wallet address is required")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("userId")) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID is required")
		}

		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				errors[fe.Field()] = "is invalid"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
