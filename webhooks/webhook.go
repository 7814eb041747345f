package webhooks

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"franchise-bot/config"
	"franchise-bot/handlers"
	"franchise-bot/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, bot *services.Conversation) {
	webhook := app.Group("/webhook")

	webhook.Post("/", handleWebhookEvent(cfg, bot))
}

// handleWebhookEvent processes incoming Telegram updates. It verifies the
// secret token, acknowledges immediately, and hands the update to a
// goroutine so a slow AI call for one chat never delays another chat.
func handleWebhookEvent(cfg *config.Config, bot *services.Conversation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.WebhookSecret != "" {
			token := c.Get("X-Telegram-Bot-Api-Secret-Token")
			if token != cfg.WebhookSecret {
				slog.Warn("Webhook secret token mismatch")
				return c.SendStatus(fiber.StatusForbidden)
			}
		}

		var update Update
		if err := c.BodyParser(&update); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Only text messages are processed
		if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
			return c.SendStatus(fiber.StatusOK)
		}

		inbound := handlers.Inbound{
			UserID: update.Message.From.ID,
			ChatID: update.Message.Chat.ID,
			Text:   update.Message.Text,
		}

		// Process asynchronously and return immediately to Telegram
		go handlers.HandleMessage(bot, cfg, inbound)

		return c.SendStatus(fiber.StatusOK)
	}
}
