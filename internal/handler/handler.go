package handler

import (
	"github.com/go-telegram/bot"
	"github.com/solyakov/chatgptbot/internal/config"
	"github.com/solyakov/chatgptbot/internal/service"
)

// Handler holds all dependencies needed by command and text handlers.
type Handler struct {
	bot   *bot.Bot
	cfg   *config.Config
	store *service.ChatStore
	chat  *service.ChatService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot   *bot.Bot
	Cfg   *config.Config
	Store *service.ChatStore
	Chat  *service.ChatService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:   deps.Bot,
		cfg:   deps.Cfg,
		store: deps.Store,
		chat:  deps.Chat,
	}
}
