package handlers

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"franchise-bot/config"
	"franchise-bot/models"
	"franchise-bot/services"
)

// turnTimeout bounds one full turn including AI calls.
const turnTimeout = 60 * time.Second

const welcomeText = `Hello! 👋 I'm your RealtyPlus assistant.
(If you want to ask your questions in Spanish you can, I will respond to you in Spanish too)

I can help you with information about:
• What is RealtyPlus
• Franchises and requirements
• Countries where we operate
• Support and training
• Steps to get started
• And much more...

What would you like to know?`

// Inbound is one text message delivered by the transport layer.
type Inbound struct {
	UserID int64
	ChatID int64
	Text   string
}

// HandleMessage runs one conversation turn for an inbound message and sends
// the resulting replies back to the chat.
func HandleMessage(bot *services.Conversation, cfg *config.Config, in Inbound) {
	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	userID := strconv.FormatInt(in.UserID, 10)

	slog.Info("Handling message", "userID", userID, "chatID", in.ChatID, "message", in.Text)

	if in.Text == "/start" {
		if err := services.SendTelegramMessage(ctx, cfg.TelegramToken, in.ChatID, welcomeText); err != nil {
			slog.Error("Failed to send welcome message", "error", err, "chatID", in.ChatID)
		}
		return
	}

	result := bot.HandleTurn(ctx, userID, in.Text)

	services.SaveMessage(ctx, &models.Message{
		ChatID:    userID,
		SenderID:  userID,
		Message:   in.Text,
		Language:  result.Language,
		Category:  result.Category,
		IsBot:     false,
		Timestamp: time.Now(),
	})

	for _, reply := range result.Replies {
		if err := services.SendTelegramMessage(ctx, cfg.TelegramToken, in.ChatID, reply); err != nil {
			slog.Error("Failed to send reply", "error", err, "chatID", in.ChatID)
			continue
		}

		services.SaveMessage(ctx, &models.Message{
			ChatID:    userID,
			SenderID:  "bot",
			Message:   reply,
			Language:  result.Language,
			Category:  result.Category,
			IsBot:     true,
			Timestamp: time.Now(),
		})
	}
}
