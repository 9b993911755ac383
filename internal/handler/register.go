package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command handlers on the bot instance.
func (h *Handler) Register() {
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/model", bot.MatchTypePrefix, h.handleModel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypePrefix, h.handleReset)
}

// PublishCommands advertises the command list to Telegram clients.
func (h *Handler) PublishCommands(ctx context.Context) error {
	_, err := h.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{
				Command:     "model",
				Description: fmt.Sprintf("Устанавливает модель GPT (например, /model <gpt-4|gpt-3.5-turbo|...> ). По умолчанию это %s.", h.cfg.DefaultModel),
			},
			{
				Command:     "reset",
				Description: "Перезагружает разговор.",
			},
		},
	})
	if err != nil {
		return fmt.Errorf("set my commands: %w", err)
	}
	return nil
}
