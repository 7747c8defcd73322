package certificateValidator

import (
	"chainlearn/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// IssueRequest issues a certificate for a (user, track) pair
type IssueRequest struct {
	UserID  string `json:"userId" validate:"required"`
	TrackID string `json:"trackId" validate:"required"`
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		if fe.Tag() == "required" {
			errors[fe.Field()] = "is required"
		} else {
			errors[fe.Field()] = "is invalid"
		}
	}
	return errors
}

func Issue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}
