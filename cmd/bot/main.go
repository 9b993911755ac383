package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/solyakov/chatgptbot/internal/config"
	"github.com/solyakov/chatgptbot/internal/handler"
	"github.com/solyakov/chatgptbot/internal/middleware"
	"github.com/solyakov/chatgptbot/internal/retry"
	"github.com/solyakov/chatgptbot/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	retryCfg := retry.Config{
		MaxAttempts: cfg.MaxRetries,
		Unit:        config.RetryBackoffUnit,
	}
	openAI := service.NewOpenAIService(cfg.OpenAIKey)
	store := service.NewChatStore(config.SystemPrompt, cfg.DefaultModel)
	compactor := service.NewCompactor(openAI, store.SystemPrompt(), cfg.HistoryLimit, retryCfg)
	chatService := service.NewChatService(openAI, compactor, service.ChatParams{
		Temperature:      cfg.Temperature,
		MaxTokens:        cfg.MaxTokens,
		N:                cfg.NChoices,
		PresencePenalty:  cfg.PresencePenalty,
		FrequencyPenalty: cfg.FrequencyPenalty,
	}, retryCfg)

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.Allowlist(cfg.IsAllowed),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleText(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:   b,
		Cfg:   cfg,
		Store: store,
		Chat:  chatService,
	})

	// Register command handlers and advertise them to clients
	h.Register()
	if err := h.PublishCommands(ctx); err != nil {
		slog.Error("failed to publish commands", "error", err)
	}

	// Start bot
	slog.Info("starting bot", "username", me.Username, "model", cfg.DefaultModel)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
