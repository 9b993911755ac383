package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	tg "github.com/solyakov/chatgptbot/internal/telegram"
)

// HandleText processes a plain text message: it records the turn in the
// chat's session, requests a completion and delivers the answer in chunks.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	msg := update.Message

	// Skip commands
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	chatID := msg.Chat.ID
	sess := h.store.GetOrCreate(chatID)

	// One turn at a time per chat
	if !sess.TryBeginTurn() {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "⏳ Дождитесь ответа на предыдущий запрос.",
		})
		return
	}
	defer sess.EndTurn()

	stopTyping := tg.StartTyping(ctx, b, chatID)
	defer stopTyping()

	answer := h.chat.Answer(ctx, sess, msg.Text)

	if err := tg.SendChunked(ctx, b, chatID, answer, h.cfg.ChunkSizeLimit); err != nil {
		slog.Error("deliver answer", "error", err, "chat_id", chatID)
	}
}
