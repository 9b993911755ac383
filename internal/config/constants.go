package config

import "time"

const (
	// Seed message for every new or reset conversation.
	SystemPrompt = "You are a helpful assistant."

	// Instruction sent as the first message of a summarization request.
	SummarizeInstruction = "Summarize this conversation in 700 characters or less, using the main language of the conversation."

	// Temperature for summarization calls, independent of the user-facing setting.
	SummarizeTemperature = 0.4

	// Backoff step between retry attempts.
	RetryBackoffUnit = 1 * time.Second

	// AI request timeout (imposed by the HTTP client, not the relay)
	RequestTimeout = 90 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096
)
