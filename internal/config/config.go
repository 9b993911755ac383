package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken  string `env:"TELEGRAM_BOT_TOKEN,required"`
	OpenAIKey string `env:"OPENAI_API_KEY,required"`

	// Access control
	AllowedUserIDs []int64 `env:"ALLOWED_TELEGRAM_USER_IDS,required" envSeparator:","`

	// Model and sampling
	DefaultModel     string  `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	MaxTokens        int     `env:"MAX_TOKENS" envDefault:"1200"`
	NChoices         int     `env:"N_CHOICES" envDefault:"1"`
	Temperature      float64 `env:"TEMPERATURE" envDefault:"1.0"`
	PresencePenalty  float64 `env:"PRESENCE_PENALTY" envDefault:"0.0"`
	FrequencyPenalty float64 `env:"FREQUENCY_PENALTY" envDefault:"0.0"`

	// Conversation history
	HistoryLimit int `env:"HISTORY_SIZE_LIMIT" envDefault:"10"`

	// Delivery
	ChunkSizeLimit int `env:"TELEGRAM_CHUNK_SIZE_LIMIT" envDefault:"4096"`

	// Retries
	MaxRetries int `env:"MAX_RETRIES" envDefault:"3"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("HISTORY_SIZE_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.ChunkSizeLimit < 1 {
		return fmt.Errorf("TELEGRAM_CHUNK_SIZE_LIMIT must be positive, got %d", c.ChunkSizeLimit)
	}
	if c.ChunkSizeLimit > MaxTelegramMessageLen {
		return fmt.Errorf("TELEGRAM_CHUNK_SIZE_LIMIT must not exceed %d, got %d", MaxTelegramMessageLen, c.ChunkSizeLimit)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be positive, got %d", c.MaxRetries)
	}
	if c.NChoices < 1 {
		return fmt.Errorf("N_CHOICES must be positive, got %d", c.NChoices)
	}
	return nil
}

// IsAllowed reports whether the Telegram user id is in the configured allowlist.
func (c *Config) IsAllowed(telegramID int64) bool {
	for _, id := range c.AllowedUserIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
