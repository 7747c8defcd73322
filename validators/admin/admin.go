package adminValidator

import (
	"chainlearn/middleware"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateTrackRequest creates a learning track
type CreateTrackRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category" validate:"required"`
	Difficulty   string  `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	TotalLessons int     `json:"totalLessons" validate:"min=0"`
	IsPaid       bool    `json:"isPaid"`
	Price        float64 `json:"price" validate:"min=0"`
}

// UpdateTrackRequest updates the editable track fields
type UpdateTrackRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// CreateLessonRequest creates a lesson inside a track
type CreateLessonRequest struct {
	TrackID     string `json:"trackId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	VideoURL    string `json:"videoUrl"`
	Duration    int    `json:"duration" validate:"min=0"`
	OrderIndex  int    `json:"orderIndex" validate:"min=0"`
	Level       string `json:"level"`
}

// CreateQuizRequest attaches a quiz to a lesson
type CreateQuizRequest struct {
	LessonID     string          `json:"lessonId" validate:"required"`
	Title        string          `json:"title" validate:"required"`
	Questions    json.RawMessage `json:"questions" validate:"required"`
	PassingScore int             `json:"passingScore" validate:"min=0,max=100"`
}

// CreateJobRequest posts a job to the board
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Company        string   `json:"company" validate:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category" validate:"required"`
	Location       string   `json:"location"`
	SalaryMin      int      `json:"salaryMin" validate:"min=0"`
	SalaryMax      int      `json:"salaryMax" validate:"min=0"`
	RequiredSkills []string `json:"requiredSkills"`
	ApplyURL       string   `json:"applyUrl"`
	IsSponsored    bool     `json:"isSponsored"`
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

func CreateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTrackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCreateTrack", reqData)
		return c.Next()
	}
}

func UpdateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("trackId")) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Track ID is required")
		}

		reqData := new(UpdateTrackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedUpdateTrack", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCreateLesson", reqData)
		return c.Next()
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if reqData.PassingScore == 0 {
			reqData.PassingScore = 70
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCreateQuiz", reqData)
		return c.Next()
	}
}

func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateJobRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCreateJob", reqData)
		return c.Next()
	}
}
