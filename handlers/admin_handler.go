package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"franchise-bot/config"
	"franchise-bot/services"
)

// GetStats reports catalog size and live session count.
func GetStats(bot *services.Conversation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"categories": bot.Catalog().Size(),
			"sessions":   bot.SessionCount(),
		})
	}
}

// ReloadCatalog rebuilds the catalog from the source file and swaps it in.
// Each built catalog stays immutable; the swap replaces the whole snapshot.
func ReloadCatalog(bot *services.Conversation, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		catalog := services.LoadCatalog(cfg.CatalogPath)
		bot.SwapCatalog(catalog)

		slog.Info("Catalog reloaded", "categories", catalog.Size())
		return c.JSON(fiber.Map{
			"categories": catalog.Size(),
		})
	}
}
