package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("ALLOWED_TELEGRAM_USER_IDS", "100,200")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultModel != "gpt-3.5-turbo" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	if cfg.MaxTokens != 1200 {
		t.Errorf("MaxTokens = %d", cfg.MaxTokens)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if cfg.NChoices != 1 {
		t.Errorf("NChoices = %d", cfg.NChoices)
	}
	if cfg.Temperature != 1.0 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.PresencePenalty != 0 || cfg.FrequencyPenalty != 0 {
		t.Errorf("penalties = %v, %v", cfg.PresencePenalty, cfg.FrequencyPenalty)
	}
	if cfg.ChunkSizeLimit != 4096 {
		t.Errorf("ChunkSizeLimit = %d", cfg.ChunkSizeLimit)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ALLOWED_TELEGRAM_USER_IDS", "1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("OPENAI_MODEL", "gpt-4")
	t.Setenv("HISTORY_SIZE_LIMIT", "20")
	t.Setenv("TELEGRAM_CHUNK_SIZE_LIMIT", "1000")
	t.Setenv("MAX_RETRIES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultModel != "gpt-4" || cfg.HistoryLimit != 20 ||
		cfg.ChunkSizeLimit != 1000 || cfg.MaxRetries != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RejectsNonPositiveTunables(t *testing.T) {
	cases := []struct {
		envVar string
		value  string
	}{
		{"HISTORY_SIZE_LIMIT", "0"},
		{"TELEGRAM_CHUNK_SIZE_LIMIT", "-1"},
		{"TELEGRAM_CHUNK_SIZE_LIMIT", "5000"},
		{"MAX_RETRIES", "0"},
		{"N_CHOICES", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.envVar, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.envVar, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected validation error for %s=%s", tc.envVar, tc.value)
			}
			if !strings.Contains(err.Error(), tc.envVar) {
				t.Fatalf("expected error to name %s, got %v", tc.envVar, err)
			}
		})
	}
}

func TestIsAllowed(t *testing.T) {
	cfg := &Config{AllowedUserIDs: []int64{100, 200}}

	if !cfg.IsAllowed(100) || !cfg.IsAllowed(200) {
		t.Fatal("expected listed ids to be allowed")
	}
	if cfg.IsAllowed(300) {
		t.Fatal("expected unlisted id to be rejected")
	}
}
