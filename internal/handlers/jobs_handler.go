package handlers

import (
	"github.com/gofiber/fiber/v2"

	"career-compass/internal/models"
	"career-compass/internal/services"
)

type JobsHandler struct {
	jobSearch services.JobSearchService
}

func NewJobsHandler(jobSearch services.JobSearchService) *JobsHandler {
	return &JobsHandler{
		jobSearch: jobSearch,
	}
}

// HandleSearchJobs handles GET /jobs. An empty match set is a valid empty
// response, not an error.
func (h *JobsHandler) HandleSearchJobs(c *fiber.Ctx) error {
	keywords := c.Query("keywords")
	if keywords == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "keywords query parameter is required",
		})
	}

	jobs, err := h.jobSearch.SearchJobs(c.Context(), keywords)
	if err != nil {
		return err
	}

	return c.JSON(models.JobSearchResponse{Jobs: jobs})
}
