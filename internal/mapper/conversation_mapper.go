package mapper

import (
	"bizchat-be/internal/entity"
	"bizchat-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	return &entity.Conversation{
		Id:         c.Id,
		TenantId:   c.TenantId,
		SessionKey: c.SessionKey,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	return &model.Conversation{
		Id:         c.Id,
		TenantId:   c.TenantId,
		SessionKey: c.SessionKey,
		CreatedAt:  c.CreatedAt,
	}
}

// TurnToEntity needs the parent conversation to fill the denormalized
// tenant and session fields on the entity.
func (m *ConversationMapper) TurnToEntity(t *model.ConversationTurn, parent *entity.Conversation) *entity.ConversationTurn {
	if t == nil {
		return nil
	}
	turn := &entity.ConversationTurn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Role:           t.Role,
		Content:        t.Content,
		SequenceNumber: t.SequenceNumber,
		CreatedAt:      t.CreatedAt,
	}
	if parent != nil {
		turn.TenantId = parent.TenantId
		turn.SessionKey = parent.SessionKey
	}
	return turn
}

func (m *ConversationMapper) TurnToModel(t *entity.ConversationTurn) *model.ConversationTurn {
	if t == nil {
		return nil
	}
	return &model.ConversationTurn{
		Id:             t.Id,
		ConversationId: t.ConversationId,
		Role:           t.Role,
		Content:        t.Content,
		SequenceNumber: t.SequenceNumber,
		CreatedAt:      t.CreatedAt,
	}
}
