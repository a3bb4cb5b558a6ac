package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"career-compass/internal/config"
	"career-compass/internal/handlers"
	"career-compass/internal/repositories"
	"career-compass/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage and PDF parsing
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	pdfParser := services.NewPDFParserService()

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Pipeline collaborators
	skillExtractor := services.NewSkillExtractor(geminiService)
	scoringService := services.NewScoringService()
	classifier := services.NewRoleClassifier(cfg.Classifier.BaseURL, cfg.Classifier.Timeout)
	nicheGenerator := services.NewNicheGenerator(geminiService)

	pipeline := services.NewPipelineService(
		userRepo,
		scoreRepo,
		skillExtractor,
		scoringService,
		classifier,
		nicheGenerator,
	)
	log.Println("✅ Pipeline service initialized")

	// Job search with Redis read-through cache
	jobCache := services.NewJobCache(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.CacheTTL)
	jobSearch := services.NewJobSearchService(cfg.Reed.BaseURL, cfg.Reed.APIKey, cfg.Reed.Timeout, jobCache)
	log.Println("✅ Job search service initialized")

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(pipeline, storageService, pdfParser, cfg.Storage.MaxFileSize)
	quizHandler := handlers.NewQuizHandler(pipeline)
	checkHandler := handlers.NewCheckHandler(pipeline)
	jobsHandler := handlers.NewJobsHandler(jobSearch)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Compass API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/resume", resumeHandler.HandleAnalyzeResume)
	api.Post("/quiz", quizHandler.HandleSubmitQuiz)
	api.Get("/check", checkHandler.HandleCheckProgress)
	api.Get("/jobs", jobsHandler.HandleSearchJobs)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Compass API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resume",
				"POST /api/v1/quiz",
				"GET /api/v1/check",
				"GET /api/v1/jobs",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// customErrorHandler maps the pipeline error taxonomy to HTTP statuses:
// caller mistakes to 400, collaborator failures to 502, invariant
// violations and everything else to 500.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var validationErr *services.ValidationError
	var upstreamErr *services.UpstreamError
	var decodeErr *services.DecodeError
	var formatErr *services.FormatError

	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
	case errors.As(err, &upstreamErr), errors.As(err, &decodeErr), errors.As(err, &formatErr):
		code = fiber.StatusBadGateway
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
