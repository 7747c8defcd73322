package progressValidator

import (
	"chainlearn/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EnrollRequest enrolls a user into a track
type EnrollRequest struct {
	UserID  string `json:"userId" validate:"required"`
	TrackID string `json:"trackId" validate:"required"`
}

// CompleteLessonRequest marks a lesson complete within an enrollment
type CompleteLessonRequest struct {
	UserID   string `json:"userId" validate:"required"`
	TrackID  string `json:"trackId" validate:"required"`
	LessonID string `json:"lessonId" validate:"required"`
}

// CompleteQuizRequest records a quiz completion with the caller-graded score
type CompleteQuizRequest struct {
	UserID  string `json:"userId" validate:"required"`
	TrackID string `json:"trackId" validate:"required"`
	QuizID  string `json:"quizId" validate:"required"`
	Score   int    `json:"score" validate:"min=0"`
}

func requiredFieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errors[fe.Field()] = "is required"
	}
	return errors
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, requiredFieldErrors(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, requiredFieldErrors(err))
		}

		c.Locals("validatedCompleteLesson", reqData)
		return c.Next()
	}
}

func CompleteQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, requiredFieldErrors(err))
		}

		c.Locals("validatedCompleteQuiz", reqData)
		return c.Next()
	}
}
