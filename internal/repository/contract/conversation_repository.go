package contract

import (
	"context"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)

	// FindOneLocked reads the conversation row under FOR UPDATE so that
	// sequence assignment is serialized per session within a transaction.
	FindOneLocked(ctx context.Context, sessionKey string) (*entity.Conversation, error)
}
