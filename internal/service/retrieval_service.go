package service

import (
	"context"
	"time"

	"bizchat-be/internal/pkg/logger"
	"bizchat-be/internal/repository/unitofwork"
	"bizchat-be/pkg/embedding"
	"bizchat-be/pkg/rag"

	"github.com/google/uuid"
)

type IRetrievalService interface {
	// BuildContext embeds the query, searches the tenant's chunks and
	// renders them as a prompt block. Retrieval is best effort: on any
	// upstream failure it degrades to "" so the chat flow continues
	// without document grounding.
	BuildContext(ctx context.Context, tenantId uuid.UUID, query string) string
}

type retrievalService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	topK              int
	timeout           time.Duration
	logger            logger.ILogger
}

func NewRetrievalService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	topK int,
	timeout time.Duration,
	sysLogger logger.ILogger,
) IRetrievalService {
	if topK <= 0 {
		topK = 5
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &retrievalService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		topK:              topK,
		timeout:           timeout,
		logger:            sysLogger,
	}
}

func (s *retrievalService) BuildContext(ctx context.Context, tenantId uuid.UUID, query string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		s.logger.Warn("retrieval", "query embedding failed, answering without documents", map[string]interface{}{
			"tenant_id": tenantId,
			"error":     err.Error(),
		})
		return ""
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.DocumentChunkRepository().SearchSimilar(ctx, tenantId, res.Embedding.Values, s.topK)
	if err != nil {
		s.logger.Warn("retrieval", "similarity search failed, answering without documents", map[string]interface{}{
			"tenant_id": tenantId,
			"error":     err.Error(),
		})
		return ""
	}

	return rag.FormatContext(chunks)
}
