package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"franchise-bot/config"
	"franchise-bot/handlers"
	"franchise-bot/middleware"
	"franchise-bot/services"
	"franchise-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	if cfg.TelegramToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	// Load the category catalog; a missing source degrades to an empty
	// catalog rather than refusing to start.
	catalog := services.LoadCatalog(cfg.CatalogPath)

	// Initialize MongoDB for transcript persistence (optional)
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := services.InitMongoDB(ctx, cfg.MongoURI, cfg.DatabaseName)
		if err != nil {
			slog.Error("Failed to connect to MongoDB, transcript persistence disabled", "error", err)
		} else {
			defer client.Disconnect(context.Background())
		}
	} else {
		slog.Info("MONGO_URI not set, transcript persistence disabled")
	}

	// Wire the conversation core to the Claude capability
	claude := services.NewClaudeClient(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	bot := services.NewConversation(claude, catalog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, bot)

	// Admin routes (protected)
	admin := app.Group("/admin", middleware.RequireAdminToken(cfg))
	admin.Get("/stats", handlers.GetStats(bot))
	admin.Post("/catalog/reload", handlers.ReloadCatalog(bot, cfg))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "franchise-bot",
		})
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
