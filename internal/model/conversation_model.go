package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId   uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionKey string    `gorm:"type:text;not null;uniqueIndex"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// ConversationTurn carries a per-conversation sequence number; the
// unique index backs the no-duplicate guarantee even if two writers
// slip past the row lock.
type ConversationTurn struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_conversation_seq"`
	Role           string    `gorm:"type:text;not null"`
	Content        string    `gorm:"type:text;not null"`
	SequenceNumber int       `gorm:"not null;uniqueIndex:idx_conversation_seq"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (ConversationTurn) TableName() string {
	return "conversation_turns"
}
