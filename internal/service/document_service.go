package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bizchat-be/internal/dto"
	"bizchat-be/internal/entity"
	"bizchat-be/internal/pkg/apperr"
	"bizchat-be/internal/pkg/logger"
	"bizchat-be/internal/repository/specification"
	"bizchat-be/internal/repository/unitofwork"
	"bizchat-be/pkg/embedding"
	"bizchat-be/pkg/events"
	pktNats "bizchat-be/pkg/nats"
	"bizchat-be/pkg/utils"

	"github.com/google/uuid"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200
)

type IDocumentService interface {
	// Ingest splits, embeds and stores a document atomically: either
	// all chunks become searchable or none do.
	Ingest(ctx context.Context, tenantId uuid.UUID, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)

	// Update replaces the document content and queues a re-embed job.
	Update(ctx context.Context, tenantId, documentId uuid.UUID, req *dto.IngestDocumentRequest) error

	List(ctx context.Context, tenantId uuid.UUID) (*dto.ListDocumentsResponse, error)
	Delete(ctx context.Context, tenantId, documentId uuid.UUID) error

	// Reembed rebuilds all chunks for a document. Used by the job
	// consumer after an update.
	Reembed(ctx context.Context, documentId uuid.UUID) error
}

type documentService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	reembedPublisher  IPublisherService
	eventPublisher    *pktNats.Publisher
	logger            logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	reembedPublisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		reembedPublisher:  reembedPublisher,
		eventPublisher:    eventPublisher,
		logger:            sysLogger,
	}
}

func (s *documentService) Ingest(ctx context.Context, tenantId uuid.UUID, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	document := entity.Document{
		Id:        uuid.New(),
		TenantId:  tenantId,
		Name:      req.Name,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	chunks, err := s.embedChunks(ctx, &document)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Create(ctx, &document); err != nil {
		return nil, err
	}
	if err := uow.DocumentChunkRepository().CreateBulk(ctx, chunks); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewDocumentIngested(tenantId, document.Id, len(chunks))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("document", "failed to publish ingest event", map[string]interface{}{
				"document_id": document.Id,
				"error":       err.Error(),
			})
		}
	}

	return &dto.IngestDocumentResponse{
		Id:         document.Id,
		ChunkCount: len(chunks),
	}, nil
}

// embedChunks splits the document and generates one embedding per
// chunk. A single embedding failure aborts the whole document.
func (s *documentService) embedChunks(ctx context.Context, document *entity.Document) ([]*entity.DocumentChunk, error) {
	parts := utils.SplitText(document.Content, chunkSize, chunkOverlap)

	chunks := make([]*entity.DocumentChunk, 0, len(parts))
	for i, part := range parts {
		res, err := s.embeddingProvider.Generate(ctx, part, embedding.TaskRetrievalDocument)
		if err != nil {
			return nil, apperr.Upstream("embedding", fmt.Errorf("chunk %d of %d: %w", i+1, len(parts), err))
		}
		chunks = append(chunks, &entity.DocumentChunk{
			Id:         uuid.New(),
			TenantId:   document.TenantId,
			DocumentId: document.Id,
			ChunkIndex: i,
			Content:    part,
			Embedding:  res.Embedding.Values,
			SourceName: document.Name,
			CreatedAt:  time.Now(),
		})
	}
	return chunks, nil
}

func (s *documentService) Update(ctx context.Context, tenantId, documentId uuid.UUID, req *dto.IngestDocumentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return apperr.NotFound("document", documentId.String())
	}

	now := time.Now()
	document.Name = req.Name
	document.Content = req.Content
	document.UpdatedAt = &now
	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		return err
	}

	msgJson, err := json.Marshal(dto.ReembedDocumentMessage{DocumentId: document.Id})
	if err != nil {
		return err
	}
	return s.reembedPublisher.Publish(ctx, msgJson)
}

func (s *documentService) List(ctx context.Context, tenantId uuid.UUID) (*dto.ListDocumentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := dto.ListDocumentsResponse{
		Documents: make([]dto.DocumentItem, 0, len(documents)),
	}
	for _, document := range documents {
		res.Documents = append(res.Documents, dto.DocumentItem{
			Id:        document.Id,
			Name:      document.Name,
			CreatedAt: document.CreatedAt,
		})
	}
	return &res, nil
}

func (s *documentService) Delete(ctx context.Context, tenantId, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return apperr.NotFound("document", documentId.String())
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, document.Id); err != nil {
		return err
	}
	if err := uow.DocumentRepository().Delete(ctx, document.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *documentService) Reembed(ctx context.Context, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if document == nil {
		return apperr.NotFound("document", documentId.String())
	}

	chunks, err := s.embedChunks(ctx, document)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, document.Id); err != nil {
		return err
	}
	if err := uow.DocumentChunkRepository().CreateBulk(ctx, chunks); err != nil {
		return err
	}
	return uow.Commit()
}
