package rag

import (
	"testing"

	"bizchat-be/internal/entity"
)

func TestFormatContext(t *testing.T) {
	tests := []struct {
		name   string
		chunks []*entity.ScoredChunk
		want   string
	}{
		{
			name:   "no chunks",
			chunks: nil,
			want:   "",
		},
		{
			name: "single chunk",
			chunks: []*entity.ScoredChunk{
				{Chunk: &entity.DocumentChunk{Content: "We open at 9am."}},
			},
			want: "Document 1:\nWe open at 9am.",
		},
		{
			name: "multiple chunks numbered in order",
			chunks: []*entity.ScoredChunk{
				{Chunk: &entity.DocumentChunk{Content: "We open at 9am."}},
				{Chunk: &entity.DocumentChunk{Content: "Cleanings take an hour."}},
			},
			want: "Document 1:\nWe open at 9am.\n\nDocument 2:\nCleanings take an hour.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatContext(tt.chunks); got != tt.want {
				t.Errorf("FormatContext() = %q, want %q", got, tt.want)
			}
		})
	}
}
