package service

import (
	"context"
	"log/slog"

	"github.com/solyakov/chatgptbot/internal/domain"
	"github.com/solyakov/chatgptbot/internal/retry"
)

// Summarizer compresses a conversation log into a short text.
type Summarizer interface {
	Summarize(ctx context.Context, model string, messages []domain.Message) (string, error)
}

// Compactor bounds a session's log length while preserving continuity:
// instead of dropping old turns it replaces them with a generated summary.
type Compactor struct {
	summarizer   Summarizer
	systemPrompt domain.Message
	limit        int
	retryCfg     retry.Config
}

func NewCompactor(summarizer Summarizer, systemPrompt domain.Message, limit int, retryCfg retry.Config) *Compactor {
	return &Compactor{
		summarizer:   summarizer,
		systemPrompt: systemPrompt,
		limit:        limit,
		retryCfg:     retryCfg,
	}
}

// Remember appends msg to the session log, compacting first when the log has
// outgrown the limit. The threshold is checked before appending, so the log
// can transiently hold limit+1 messages and compaction triggers one turn
// late; after a successful compaction the log holds exactly the system
// message, the summary and the new message.
//
// A summarization failure is logged and swallowed: the message is appended to
// the over-length log as-is and compaction is retried on a later turn.
func (c *Compactor) Remember(ctx context.Context, sess *Session, msg domain.Message) {
	if sess.Len() > c.limit {
		var summary string
		err := retry.Do(ctx, c.retryCfg, func() error {
			s, err := c.summarizer.Summarize(ctx, sess.Model(), sess.Messages())
			if err != nil {
				slog.Error("summarize conversation", "error", err)
				return err
			}
			summary = s
			return nil
		})
		if err != nil {
			slog.Error("compaction skipped", "error", err, "log_len", sess.Len())
		} else {
			sess.replace([]domain.Message{c.systemPrompt, domain.Assistant(summary)})
		}
	}
	sess.append(msg)
}
