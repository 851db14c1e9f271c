package utils

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with an 'overlap' between consecutive chunks to preserve
// context at boundaries. Every character of the input is covered by at
// least one chunk and no chunk is ever empty. This is a simple
// rune-based splitter; token-aware splitting is intentionally out of scope.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = 1000
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
