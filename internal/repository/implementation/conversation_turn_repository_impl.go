package implementation

import (
	"context"
	"database/sql"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/mapper"
	"bizchat-be/internal/model"
	"bizchat-be/internal/repository/contract"
	"bizchat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationTurnRepository(db *gorm.DB) contract.ConversationTurnRepository {
	return &ConversationTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationTurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationTurnRepositoryImpl) Create(ctx context.Context, turn *entity.ConversationTurn) error {
	m := r.mapper.TurnToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	refreshed := r.mapper.TurnToEntity(m, nil)
	refreshed.TenantId = turn.TenantId
	refreshed.SessionKey = turn.SessionKey
	*turn = *refreshed
	return nil
}

func (r *ConversationTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error) {
	var models []*model.ConversationTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	turns := make([]*entity.ConversationTurn, len(models))
	for i, m := range models {
		turns[i] = r.mapper.TurnToEntity(m, nil)
	}
	return turns, nil
}

func (r *ConversationTurnRepositoryImpl) LastSequence(ctx context.Context, conversationId uuid.UUID) (int, error) {
	var last sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&model.ConversationTurn{}).
		Where("conversation_id = ?", conversationId).
		Select("MAX(sequence_number)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	if !last.Valid {
		return 0, nil
	}
	return int(last.Int64), nil
}
