package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"franchise-bot/config"
)

// RequireAdminToken guards the admin surface. The caller presents the plain
// token in X-Admin-Token; the config holds only its bcrypt hash. If no hash
// is configured the admin surface is disabled entirely.
func RequireAdminToken(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminTokenHash == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access not configured",
			})
		}

		token := c.Get("X-Admin-Token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminTokenHash), []byte(token)); err != nil {
			slog.Warn("Admin token rejected", "path", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid admin token",
			})
		}

		return c.Next()
	}
}
