package service

import (
	"context"
	"sync"
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IConversationService interface {
	// Append persists one turn, assigning the next sequence number for
	// the session. Concurrent appends to the same session serialize;
	// sequence numbers never collide or repeat.
	Append(ctx context.Context, tenantId uuid.UUID, sessionKey, role, content string) (*entity.ConversationTurn, error)

	History(ctx context.Context, tenantId uuid.UUID, sessionKey string) (*dto.ConversationHistoryResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory

	// Per-session mutexes serialize appends in-process; the row lock in
	// FindOneLocked covers concurrent processes sharing the database.
	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		sessions:   make(map[string]*sync.Mutex),
	}
}

func (s *conversationService) sessionLock(sessionKey string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.sessions[sessionKey]
	if !ok {
		lock = &sync.Mutex{}
		s.sessions[sessionKey] = lock
	}
	return lock
}

func (s *conversationService) Append(ctx context.Context, tenantId uuid.UUID, sessionKey, role, content string) (*entity.ConversationTurn, error) {
	lock := s.sessionLock(sessionKey)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	conversation, err := uow.ConversationRepository().FindOneLocked(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		conversation = &entity.Conversation{
			Id:         uuid.New(),
			TenantId:   tenantId,
			SessionKey: sessionKey,
			CreatedAt:  time.Now(),
		}
		if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	lastSeq, err := uow.ConversationTurnRepository().LastSequence(ctx, conversation.Id)
	if err != nil {
		return nil, err
	}

	turn := entity.ConversationTurn{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		TenantId:       conversation.TenantId,
		SessionKey:     conversation.SessionKey,
		Role:           role,
		Content:        content,
		SequenceNumber: lastSeq + 1,
		CreatedAt:      time.Now(),
	}
	if err := uow.ConversationTurnRepository().Create(ctx, &turn); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return &turn, nil
}

func (s *conversationService) History(ctx context.Context, tenantId uuid.UUID, sessionKey string) (*dto.ConversationHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	res := dto.ConversationHistoryResponse{
		SessionKey: sessionKey,
		Turns:      []dto.ConversationTurnItem{},
	}

	// Turns only carry the conversation id, so resolve the session on
	// the conversations table first.
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.BySessionKey{SessionKey: sessionKey},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return &res, nil
	}

	turns, err := uow.ConversationTurnRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "sequence_number"},
	)
	if err != nil {
		return nil, err
	}
	for _, turn := range turns {
		res.Turns = append(res.Turns, dto.ConversationTurnItem{
			Role:      turn.Role,
			Content:   turn.Content,
			Sequence:  turn.SequenceNumber,
			CreatedAt: turn.CreatedAt,
		})
	}
	return &res, nil
}
