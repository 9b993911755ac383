package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleModel switches the completion model for the current chat.
// Chats without a session are silently ignored; no session is created.
func (h *Handler) handleModel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	model := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/model"))
	if model == "" {
		model = h.cfg.DefaultModel
	}

	// Model ids are open strings; the completion API rejects bad ones at
	// call time.
	if !h.store.SetModel(chatID, model) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Использую модель %s.", model),
	})
}
