package contract

import (
	"context"

	"bizchat-be/internal/entity"

	"github.com/google/uuid"
)

type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	CountByTenant(ctx context.Context, tenantId uuid.UUID) (int64, error)

	// SearchSimilar runs a cosine nearest-neighbor query restricted to
	// the tenant's namespace, ranked by similarity descending.
	SearchSimilar(ctx context.Context, tenantId uuid.UUID, embedding []float32, limit int) ([]*entity.ScoredChunk, error)
}
