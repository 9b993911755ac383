package service

import (
	"sync"

	"github.com/solyakov/chatgptbot/internal/domain"
)

// Session is the per-chat conversation state: an ordered message log plus the
// active model. The log always starts with the system instruction message;
// compaction and reset re-seed it.
//
// Field access is guarded by mu. turnMu serializes whole answer turns so that
// two concurrent messages for the same chat cannot interleave their
// read-compact-append cycles; different sessions stay fully independent.
type Session struct {
	mu     sync.Mutex
	turnMu sync.Mutex

	messages []domain.Message
	model    string
}

func newSession(systemPrompt domain.Message, model string) *Session {
	return &Session{
		messages: []domain.Message{systemPrompt},
		model:    model,
	}
}

// TryBeginTurn attempts to claim the session for one answer turn. It returns
// false when a previous turn for the same chat is still in flight.
func (s *Session) TryBeginTurn() bool {
	return s.turnMu.TryLock()
}

func (s *Session) EndTurn() {
	s.turnMu.Unlock()
}

func (s *Session) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

func (s *Session) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

// Messages returns a snapshot copy of the conversation log.
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Session) append(msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// replace swaps the whole log, used by compaction and reset.
func (s *Session) replace(messages []domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = messages
}

// ChatStore maps chat ids to their sessions. Sessions are created lazily on
// first use and live for the process lifetime; there is no eviction.
type ChatStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session

	systemPrompt domain.Message
	defaultModel string
}

func NewChatStore(systemPrompt string, defaultModel string) *ChatStore {
	return &ChatStore{
		sessions:     make(map[int64]*Session),
		systemPrompt: domain.System(systemPrompt),
		defaultModel: defaultModel,
	}
}

// GetOrCreate returns the session for chatID, creating one seeded with the
// system instruction and the default model if the chat is new.
func (st *ChatStore) GetOrCreate(chatID int64) *Session {
	st.mu.RLock()
	sess, ok := st.sessions[chatID]
	st.mu.RUnlock()
	if ok {
		return sess
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[chatID]; ok {
		return sess
	}
	sess = newSession(st.systemPrompt, st.defaultModel)
	st.sessions[chatID] = sess
	return sess
}

// Get returns the session for chatID if it exists.
func (st *ChatStore) Get(chatID int64) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[chatID]
	return sess, ok
}

// SetModel switches the model for a known chat. Unknown chats are a no-op and
// no session is created; the return value reports whether the chat was known.
func (st *ChatStore) SetModel(chatID int64, model string) bool {
	sess, ok := st.Get(chatID)
	if !ok {
		return false
	}
	sess.SetModel(model)
	return true
}

// Reset clears a known chat's log back to the seed system message, keeping
// the session entity and its model setting. Unknown chats are a no-op.
func (st *ChatStore) Reset(chatID int64) bool {
	sess, ok := st.Get(chatID)
	if !ok {
		return false
	}
	sess.replace([]domain.Message{st.systemPrompt})
	return true
}

// SystemPrompt returns the seed message used for new and reset sessions.
func (st *ChatStore) SystemPrompt() domain.Message {
	return st.systemPrompt
}

// Len returns the number of live sessions.
func (st *ChatStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
