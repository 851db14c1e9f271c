package rag

import (
	"fmt"
	"strings"

	"bizchat-be/internal/entity"
)

// FormatContext renders retrieved chunks as a numbered excerpt block
// for insertion into the assistant prompt. Returns "" for no chunks,
// which callers treat as "answer without document grounding".
func FormatContext(chunks []*entity.ScoredChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	var b strings.Builder
	for i, chunk := range chunks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("Document %d:\n%s", i+1, chunk.Chunk.Content))
	}
	return b.String()
}
