package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"career-compass/internal/models"
	"career-compass/internal/services"
)

type ResumeHandler struct {
	pipeline    services.PipelineService
	storage     services.StorageService
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewResumeHandler(
	pipeline services.PipelineService,
	storage services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		pipeline:    pipeline,
		storage:     storage,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyzeResume handles POST /resume. The résumé arrives either as a
// multipart PDF upload or as pre-extracted text in a JSON body.
func (h *ResumeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	var userID, resumeText string

	if form, err := c.MultipartForm(); err == nil {
		// Validate before touching storage so a rejected request never
		// leaves an orphaned file in the upload dir.
		userID = c.FormValue("user_id")
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "user_id is required",
			})
		}

		files := form.File["resume"]
		if len(files) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no resume file uploaded",
			})
		}

		resumeFile := files[0]
		if resumeFile.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		filePath, err := h.storage.SaveResume(resumeFile, userID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save resume file: %v", err),
			})
		}

		text, err := h.pdfParser.ExtractText(filePath)
		if err != nil {
			// The stored file is useless without text, clean it up.
			h.storage.DeleteFile(filePath)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to extract text from PDF: %v", err),
			})
		}
		resumeText = text
	} else {
		var req models.AnalyzeResumeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request payload",
			})
		}
		userID = req.UserID
		resumeText = services.CleanResumeText(req.ResumeText)
	}

	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	if resumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume text is required (upload a PDF or send resume_text)",
		})
	}

	scores, err := h.pipeline.AnalyzeResume(c.Context(), userID, resumeText)
	if err != nil {
		return err
	}

	return c.JSON(models.AnalyzeResumeResponse{
		TechnicalScores: scores,
		NextStep:        models.StepQuiz,
	})
}
