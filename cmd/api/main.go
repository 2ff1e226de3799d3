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

	"talentlink/shortlist-engine/internal/config"
	"talentlink/shortlist-engine/internal/handlers"
	"talentlink/shortlist-engine/internal/repositories"
	"talentlink/shortlist-engine/internal/services"
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
	projectRepo := repositories.NewProjectRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	reasoningService := services.NewReasoningService(
		cfg.Reasoning,
		cfg.Shortlist.RetryMaxAttempts,
		cfg.Shortlist.RetryDelay,
	)
	if reasoningService.Enabled() {
		log.Printf("✅ Reasoning service initialized (model: %s)\n", reasoningService.Model())
	}

	shortlistService := services.NewShortlistService(
		projectRepo,
		applicationRepo,
		reasoningService,
		cfg.Shortlist,
	)
	matcherService := services.NewKeywordMatcherService()
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	shortlistHandler := handlers.NewShortlistHandler(shortlistService, projectRepo, candidateRepo)
	matchHandler := handlers.NewMatchHandler(matcherService, candidateRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Shortlist Engine API",
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
	api.Post("/projects/:id/shortlist", shortlistHandler.HandleGenerateShortlist)
	api.Post("/projects/:id/candidates/:candidateId/evaluate", shortlistHandler.HandleEvaluateCandidate)
	api.Get("/candidates/match", matchHandler.HandleMatch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Shortlist Engine API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/projects/:id/shortlist",
				"POST /api/v1/projects/:id/candidates/:candidateId/evaluate",
				"GET /api/v1/candidates/match",
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
