package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/solyakov/chatgptbot/internal/config"
	"github.com/solyakov/chatgptbot/internal/domain"
)

// OpenAIService talks to an OpenAI-compatible chat completions endpoint.
type OpenAIService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		apiKey:     apiKey,
		baseURL:    "https://api.openai.com/v1",
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

// ChatParams are the sampling parameters for a completion call. They come
// from configuration and stay constant for the process lifetime.
type ChatParams struct {
	Temperature      float64
	MaxTokens        int
	N                int
	PresencePenalty  float64
	FrequencyPenalty float64
}

type chatRequest struct {
	Model            string           `json:"model"`
	Messages         []domain.Message `json:"messages"`
	Temperature      float64          `json:"temperature"`
	MaxTokens        int              `json:"max_tokens,omitempty"`
	N                int              `json:"n,omitempty"`
	PresencePenalty  float64          `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64          `json:"frequency_penalty,omitempty"`
}

type ChatResponse struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Message ChoiceMessage `json:"message"`
}

type ChoiceMessage struct {
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Chat sends the full conversation log for completion.
func (s *OpenAIService) Chat(ctx context.Context, model string, messages []domain.Message, params ChatParams) (*ChatResponse, error) {
	return s.complete(ctx, chatRequest{
		Model:            model,
		Messages:         messages,
		Temperature:      params.Temperature,
		MaxTokens:        params.MaxTokens,
		N:                params.N,
		PresencePenalty:  params.PresencePenalty,
		FrequencyPenalty: params.FrequencyPenalty,
	})
}

// Summarize asks the model to compress a conversation into a short summary.
// The conversation is passed as a rendered transcript inside a single user
// message; the instruction fixes the target length and the reply language.
func (s *OpenAIService) Summarize(ctx context.Context, model string, messages []domain.Message) (string, error) {
	resp, err := s.complete(ctx, chatRequest{
		Model: model,
		Messages: []domain.Message{
			domain.Assistant(config.SummarizeInstruction),
			domain.User(RenderTranscript(messages)),
		},
		Temperature: config.SummarizeTemperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) complete(ctx context.Context, chatReq chatRequest) (*ChatResponse, error) {
	payload, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion API returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &chatResp, nil
}

// RenderTranscript flattens a conversation log into plain text, one
// "role: content" line per message, for use as summarization input.
func RenderTranscript(messages []domain.Message) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
