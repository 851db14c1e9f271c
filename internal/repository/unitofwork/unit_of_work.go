package unitofwork

import (
	"context"

	"bizchat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TenantRepository() contract.TenantRepository
	DocumentRepository() contract.DocumentRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
	ConversationRepository() contract.ConversationRepository
	ConversationTurnRepository() contract.ConversationTurnRepository
	AppointmentRepository() contract.AppointmentRepository
}
