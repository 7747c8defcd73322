package jobValidator

import (
	"chainlearn/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// JobActionRequest is shared by apply and save, both keyed on (user, job)
type JobActionRequest struct {
	UserID string `json:"userId" validate:"required"`
	JobID  string `json:"jobId" validate:"required"`
}

func JobAction(localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(JobActionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				errors[fe.Field()] = "is required"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(localsKey, reqData)
		return c.Next()
	}
}

func ApplyJob() fiber.Handler {
	return JobAction("validatedApply")
}

func SaveJob() fiber.Handler {
	return JobAction("validatedSave")
}
