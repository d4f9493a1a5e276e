package models

import (
	"time"

	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════
// CONVERSATION MODELS
// ═══════════════════════════════════════════════════════════

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of a conversation.
type Turn struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatSession is the explicit session context passed into each handler:
// the declared gender plus the ordered, append-only conversation log.
// Sessions are single-writer; each request runs to completion before the
// next one touches the session.
type ChatSession struct {
	ID           string    `json:"id"`
	Gender       string    `json:"gender"`
	Conversation []Turn    `json:"conversation"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Append adds a turn to the conversation log. Turns are never removed.
func (s *ChatSession) Append(role, content string) Turn {
	turn := Turn{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.Conversation = append(s.Conversation, turn)
	s.MessageCount++
	return turn
}
