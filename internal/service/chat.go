package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/solyakov/chatgptbot/internal/domain"
	"github.com/solyakov/chatgptbot/internal/retry"
)

// Completer produces a chat completion for a conversation log.
type Completer interface {
	Chat(ctx context.Context, model string, messages []domain.Message, params ChatParams) (*ChatResponse, error)
}

// completionErrorTemplate is the user-visible reply for a completion call
// that failed after all retries.
const completionErrorTemplate = "Извините, произошла ошибка при обработке вашего запроса. Пожалуйста, попробуйте снова позже. Ошибка: %v"

// ChatService answers one conversation turn: it records the user message,
// requests a completion over the full log and records the reply.
type ChatService struct {
	client    Completer
	compactor *Compactor
	params    ChatParams
	retryCfg  retry.Config
}

func NewChatService(client Completer, compactor *Compactor, params ChatParams, retryCfg retry.Config) *ChatService {
	return &ChatService{
		client:    client,
		compactor: compactor,
		params:    params,
		retryCfg:  retryCfg,
	}
}

// Answer processes one user turn and returns the text to deliver. On terminal
// completion failure it returns a fixed error reply embedding the last error;
// the failed reply is not recorded in the session, the user message is.
func (s *ChatService) Answer(ctx context.Context, sess *Session, userText string) string {
	s.compactor.Remember(ctx, sess, domain.User(userText))

	var resp *ChatResponse
	err := retry.Do(ctx, s.retryCfg, func() error {
		r, err := s.client.Chat(ctx, sess.Model(), sess.Messages(), s.params)
		if err != nil {
			slog.Error("chat completion", "error", err, "model", sess.Model())
			return err
		}
		if len(r.Choices) == 0 {
			slog.Error("chat completion", "error", domain.ErrNoChoices, "model", sess.Model())
			return domain.ErrNoChoices
		}
		resp = r
		return nil
	})
	if err != nil {
		return fmt.Sprintf(completionErrorTemplate, err)
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.compactor.Remember(ctx, sess, domain.Assistant(answer))
	return answer
}
