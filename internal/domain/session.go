package domain

import (
	"time"
)

// DefaultLanguage is the catalog default used when no selection was made
// or a selection is unknown.
const DefaultLanguage = "en-IN"

// ChatSession holds all per-session conversation state: history, mascot
// state, and the UI flags. One session exists per (user, tab session) pair
// and is torn down when the session expires or is cleared.
type ChatSession struct {
	UserID        string
	SessionID     string
	Language      string
	AutoTranslate bool
	DarkMode      bool
	Mascot        string
	Messages      []Message
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Append adds a message to the conversation history.
func (s *ChatSession) Append(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// WithSystemMessage returns the effective history to send to the model:
// a copy of the stored history with sys at index 0, replacing any stale
// system message left over from an earlier language selection. The result
// always contains exactly one system message.
func (s *ChatSession) WithSystemMessage(sys Message) []Message {
	if len(s.Messages) > 0 && s.Messages[0].Role == RoleSystem {
		out := make([]Message, len(s.Messages))
		copy(out, s.Messages)
		out[0] = sys
		return out
	}
	out := make([]Message, 0, len(s.Messages)+1)
	out = append(out, sys)
	out = append(out, s.Messages...)
	return out
}

// ClearHistory resets the conversation, keeping the session settings.
func (s *ChatSession) ClearHistory() {
	s.Messages = nil
}
