package knowledge

import "strings"

// Chunker splits text on word boundaries into chunks of at most size
// characters. Consecutive chunks share trailing words totalling at most
// overlap characters. A word longer than size becomes its own chunk.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker creates a new chunker with specified size and overlap
func NewChunker(size, overlap int) *Chunker {
	return &Chunker{
		size:    size,
		overlap: overlap,
	}
}

// ChunkText splits text into chunks with overlap
func (c *Chunker) ChunkText(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(words) {
		end, length := start, 0
		for end < len(words) {
			add := len(words[end])
			if end > start {
				add++ // separating space
			}
			if length+add > c.size && end > start {
				break
			}
			length += add
			end++
		}

		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}

		start = c.overlapStart(words, start, end)
	}

	return chunks
}

// overlapStart walks back from end over words that fit in the overlap.
// The result is always past start so chunking makes progress.
func (c *Chunker) overlapStart(words []string, start, end int) int {
	next, length := end, 0
	for next > start+1 {
		add := len(words[next-1]) + 1
		if length+add > c.overlap {
			break
		}
		length += add
		next--
	}
	return next
}
