package handlers

import (
	"github.com/gofiber/fiber/v2"

	"career-compass/internal/services"
)

type CheckHandler struct {
	pipeline services.PipelineService
}

func NewCheckHandler(pipeline services.PipelineService) *CheckHandler {
	return &CheckHandler{
		pipeline: pipeline,
	}
}

// HandleCheckProgress handles GET /check. It tells the frontend which
// onboarding step to show next.
func (h *CheckHandler) HandleCheckProgress(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	progress, err := h.pipeline.CheckProgress(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(progress)
}
