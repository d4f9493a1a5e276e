package app

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/heenakousar16/beauty/internal/container"
	"github.com/heenakousar16/beauty/internal/handlers"
	"github.com/heenakousar16/beauty/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, c *container.Container) {
	// Prometheus metrics endpoint (no middleware, scraped directly)
	metricsHandler := handlers.NewMetricsHandler()
	app.Get("/metrics", metricsHandler.GetMetrics)

	// Health check
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now(),
			"services":  c.HealthCheck(),
		})
	})

	api := app.Group("/api", middleware.PrometheusMiddleware())

	setupCatalogRoutes(api, c)
	setupChatRoutes(api, c)
	setupWebSocketRoutes(app, c)
}

func setupCatalogRoutes(api fiber.Router, c *container.Container) {
	recommendHandler := handlers.NewRecommendHandler(c)
	api.Get("/catalog/filters", recommendHandler.HandleFilters)
	api.Post("/recommendations", recommendHandler.HandleRecommendations)
}

func setupChatRoutes(api fiber.Router, c *container.Container) {
	chatHandler := handlers.NewChatHandler(c)
	api.Post("/chat", chatHandler.HandleChat)
	api.Get("/chat/history", chatHandler.GetHistory)
}

func setupWebSocketRoutes(app *fiber.App, c *container.Container) {
	wsHandler := handlers.NewWSHandler(c)

	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			ctx.Locals("allowed", true)
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		wsHandler.HandleWebSocket(conn)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
}
