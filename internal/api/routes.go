package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mochizou/placenews/internal/config"
	"github.com/mochizou/placenews/internal/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, cfg *config.Config) {
	handlers := NewHandlers(cfg)

	// API group with versioning
	api := app.Group("/api/v1")

	// Every search fans out to the upstream feed, so the group is rate
	// limited per client IP; health stays open for probes.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RPS:   cfg.RateRPS,
		Burst: cfg.RateBurst,
		Next:  func(c *fiber.Ctx) bool { return c.Path() == "/api/v1/health" },
	}))

	// Health check endpoint
	api.Get("/health", handlers.HealthCheck)

	// Place search endpoint
	api.Get("/search", middleware.ValidateSearch(), handlers.Search)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
