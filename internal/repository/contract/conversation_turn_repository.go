package contract

import (
	"context"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationTurnRepository interface {
	Create(ctx context.Context, turn *entity.ConversationTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error)
	LastSequence(ctx context.Context, conversationId uuid.UUID) (int, error)
}
