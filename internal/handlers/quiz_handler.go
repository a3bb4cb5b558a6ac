package handlers

import (
	"github.com/gofiber/fiber/v2"

	"career-compass/internal/models"
	"career-compass/internal/services"
)

type QuizHandler struct {
	pipeline services.PipelineService
}

func NewQuizHandler(pipeline services.PipelineService) *QuizHandler {
	return &QuizHandler{
		pipeline: pipeline,
	}
}

// HandleSubmitQuiz handles POST /quiz.
func (h *QuizHandler) HandleSubmitQuiz(c *fiber.Ctx) error {
	var req models.SubmitQuizRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	if len(req.Ratings) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ratings are required",
		})
	}

	result, err := h.pipeline.SubmitQuiz(c.Context(), req.UserID, req.Ratings)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
