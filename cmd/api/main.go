package main

import (
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

	"skillscan/resume-analyzer/internal/config"
	"skillscan/resume-analyzer/internal/handlers"
	"skillscan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.HuggingFace.APIKey == "" {
		log.Println("⚠️  HF_API_KEY is not set. AI endpoints will fail until it is configured.")
	}

	// Initialize services
	pdfParser := services.NewPDFParserService()
	llmService := services.NewLLMService(cfg.HuggingFace)
	analyzerService := services.NewAnalyzerService(llmService, cfg.Analysis)
	log.Println("✅ Services initialized successfully")

	// Initialize session store for the advanced (quiz) flow
	sessionStore := services.NewSessionStore(cfg.Session.TTL)
	sessionStore.Start()

	// Initialize handlers
	extractHandler := handlers.NewExtractHandler(pdfParser)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService)
	quizHandler := handlers.NewQuizHandler(analyzerService, sessionStore, cfg.Session.JoinWait)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/extract", extractHandler.HandleExtract)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/analyze-job-role", analyzeHandler.HandleAnalyzeJobRole)
	api.Post("/analyze-compatibility", analyzeHandler.HandleAnalyzeCompatibility)
	api.Post("/generate-questions", quizHandler.HandleGenerateQuestions)
	api.Post("/advanced-analyze", quizHandler.HandleAdvancedAnalyze)
	api.Post("/submit-quiz", quizHandler.HandleSubmitQuiz)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/extract",
				"POST /api/analyze",
				"POST /api/analyze-job-role",
				"POST /api/analyze-compatibility",
				"POST /api/generate-questions",
				"POST /api/advanced-analyze",
				"POST /api/submit-quiz",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		sessionStore.Stop()
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

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
