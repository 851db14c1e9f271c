package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("hello", 1000, 200)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("short input should round-trip as a single chunk, got %v", chunks)
	}
}

func TestSplitTextEmptyInput(t *testing.T) {
	if chunks := SplitText("", 1000, 200); len(chunks) != 0 {
		t.Errorf("empty input should produce no chunks, got %d", len(chunks))
	}
}

func TestSplitTextNoEmptyChunks(t *testing.T) {
	text := strings.Repeat("a", 2001)
	for _, chunk := range SplitText(text, 1000, 200) {
		if len(chunk) == 0 {
			t.Fatal("splitter produced an empty chunk")
		}
	}
}

func TestSplitTextCoversEveryCharacter(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		chunkSize int
		overlap   int
	}{
		{"exact multiple", 3000, 1000, 200},
		{"trailing remainder", 2350, 1000, 200},
		{"one past boundary", 1001, 1000, 200},
		{"overlap larger than chunk", 500, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Distinct rune per position so coverage can be checked exactly.
			runes := make([]rune, tt.length)
			for i := range runes {
				runes[i] = rune('а' + i%32) // cyrillic block, multi-byte in UTF-8
			}
			text := string(runes)

			chunks := SplitText(text, tt.chunkSize, tt.overlap)

			covered := 0
			step := tt.chunkSize - tt.overlap
			if step <= 0 {
				step = tt.chunkSize
			}
			for i, chunk := range chunks {
				start := i * step
				chunkRunes := []rune(chunk)
				if string(runes[start:start+len(chunkRunes)]) != chunk {
					t.Fatalf("chunk %d does not match source span at offset %d", i, start)
				}
				if end := start + len(chunkRunes); end > covered {
					covered = end
				}
			}
			if covered != tt.length {
				t.Errorf("coverage stops at rune %d of %d", covered, tt.length)
			}
		})
	}
}

func TestSplitTextOverlapWindow(t *testing.T) {
	runes := make([]rune, 2500)
	for i := range runes {
		runes[i] = rune('a' + i%26)
	}
	chunks := SplitText(string(runes), 1000, 200)

	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1])
		cur := []rune(chunks[i])
		tail := string(prev[len(prev)-200:])
		head := string(cur[:200])
		if tail != head {
			t.Errorf("chunks %d and %d do not share a 200-rune overlap", i-1, i)
		}
	}
}
