package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Allowlist returns middleware that drops message updates from users outside
// the configured allow-set. Dropped updates get a log line and no reply.
func Allowlist(isAllowed func(int64) bool) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message != nil && update.Message.From != nil {
				if !isAllowed(update.Message.From.ID) {
					slog.Warn("unauthorized user", "user_id", update.Message.From.ID)
					return
				}
			}
			next(ctx, b, update)
		}
	}
}
