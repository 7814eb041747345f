package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// Telegram configuration
	TelegramToken string
	WebhookSecret string

	// Claude configuration
	ClaudeAPIKey string
	ClaudeModel  string

	// Catalog configuration
	CatalogPath string

	// MongoDB configuration (empty URI disables transcript persistence)
	MongoURI     string
	DatabaseName string

	// Admin configuration (bcrypt hash of the admin token)
	AdminTokenHash string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		WebhookSecret:  os.Getenv("WEBHOOK_SECRET_TOKEN"),
		ClaudeAPIKey:   os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:    getEnv("CLAUDE_MODEL", "claude-3-5-haiku-latest"),
		CatalogPath:    getEnv("CATALOG_PATH", "data.json"),
		MongoURI:       os.Getenv("MONGO_URI"),
		DatabaseName:   getEnv("MONGO_DB_NAME", "franchise_bot"),
		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),
		Port:           getEnv("PORT", "8080"),
	}

	if cfg.ClaudeAPIKey == "" {
		slog.Warn("CLAUDE_API_KEY not set, classification will rely on the fallback matcher")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
