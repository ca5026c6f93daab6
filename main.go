// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"fantasycricket/database"
	"fantasycricket/handlers"
	"fantasycricket/handlers/admin"
	"fantasycricket/middleware"
	"fantasycricket/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()
	db := database.GetDB()

	// Storage collaborators
	userStore := database.NewUserStore(db)
	matchStore := database.NewMatchStore(db)
	contestStore := database.NewContestStore(db)
	teamStore := database.NewTeamStore(db)

	// Domain services
	cfg := services.ConfigFromEnv()
	identityService := services.NewIdentityService(userStore, cfg)
	catalogService := services.NewCatalogService(matchStore)
	contestService := services.NewContestService(contestStore, matchStore, teamStore, cfg)
	scoringService := services.NewScoringService(matchStore, contestStore)
	standingsService := services.NewStandingsService(contestStore, matchStore, teamStore)
	standingsCache := services.NewStandingsCache()
	liveHub := services.NewLiveHub()

	handlers.InitHandlers(handlers.Deps{
		Identity:  identityService,
		Catalog:   catalogService,
		Contests:  contestService,
		Scoring:   scoringService,
		Standings: standingsService,
		Cache:     standingsCache,
		Live:      liveHub,
	})
	admin.InitHandlers(admin.Deps{
		Catalog:   catalogService,
		Contests:  contestService,
		Scoring:   scoringService,
		Standings: standingsService,
		Cache:     standingsCache,
		Live:      liveHub,
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// User routes (require authentication)
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)

	// Match catalog (public reads)
	api.Get("/matches", handlers.ListMatches)
	api.Get("/matches/:id", handlers.GetMatch)
	api.Get("/matches/:id/players", handlers.GetMatchPlayers)

	// Contest routes
	api.Get("/contests/:id", handlers.GetContest)
	api.Get("/contests/:id/standings", handlers.GetStandings)
	api.Get("/contests/:id/live", handlers.LiveStandingsUpgrade, handlers.LiveStandings())
	api.Post("/contests/:id/teams", middleware.AuthMiddleware, handlers.SubmitTeam)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Post("/matches", admin.CreateMatch)
	adminGroup.Post("/matches/:id/players", admin.AddMatchPlayer)
	adminGroup.Post("/contests", admin.CreateContest)
	adminGroup.Post("/scores", admin.UpdateScore)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":           "healthy",
			"timestamp":        time.Now().Unix(),
			"live_subscribers": liveHub.SubscriberCount(),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🏏 Team size: %d", cfg.TeamSize)
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("⚡ Standings cache enabled: %v", standingsCache.Enabled())

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}
}

// Helper functions

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
