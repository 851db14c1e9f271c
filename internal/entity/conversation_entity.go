package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConversationRoleUser      = "user"
	ConversationRoleAssistant = "assistant"
)

// Conversation groups the turns of one widget session. Created lazily on
// the first turn and retained for history, never destroyed.
type Conversation struct {
	Id         uuid.UUID
	TenantId   uuid.UUID
	SessionKey string
	CreatedAt  time.Time
}

// ConversationTurn is one message in a session. SequenceNumber is
// monotonically increasing per session and never reused.
type ConversationTurn struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	TenantId       uuid.UUID
	SessionKey     string
	Role           string
	Content        string
	SequenceNumber int
	CreatedAt      time.Time
}
