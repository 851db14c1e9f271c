package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id        uuid.UUID
	TenantId  uuid.UUID
	Name      string
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// DocumentChunk is the unit of embedding and retrieval: a bounded,
// overlapping segment of a source document. Chunks are immutable and
// removed only when the parent document is deleted.
type DocumentChunk struct {
	Id         uuid.UUID
	TenantId   uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	Content    string
	Embedding  []float32
	SourceName string
	CreatedAt  time.Time
}

// ScoredChunk pairs a chunk with its cosine similarity to a query.
type ScoredChunk struct {
	Chunk      *DocumentChunk
	Similarity float64
}
