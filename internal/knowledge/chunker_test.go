package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunker_ChunkText(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		text    string
		want    []string
	}{
		{
			name:    "empty text",
			size:    100,
			overlap: 20,
			text:    "",
			want:    nil,
		},
		{
			name:    "whitespace only",
			size:    100,
			overlap: 20,
			text:    " \n\t ",
			want:    nil,
		},
		{
			name:    "text smaller than chunk size",
			size:    100,
			overlap: 20,
			text:    "This is a short text",
			want:    []string{"This is a short text"},
		},
		{
			name:    "whitespace is collapsed",
			size:    100,
			overlap: 0,
			text:    "  one\ttwo\n\nthree ",
			want:    []string{"one two three"},
		},
		{
			name:    "no overlap",
			size:    10,
			overlap: 0,
			text:    "one two three four five six",
			want:    []string{"one two", "three four", "five six"},
		},
		{
			name:    "with overlap",
			size:    15,
			overlap: 6,
			text:    "one two three four five six",
			want:    []string{"one two three", "three four five", "five six"},
		},
		{
			name:    "single word larger than chunk size",
			size:    5,
			overlap: 2,
			text:    "verylongword",
			want:    []string{"verylongword"},
		},
		{
			name:    "overlap larger than chunk still progresses",
			size:    4,
			overlap: 100,
			text:    "aa bb cc",
			want:    []string{"aa", "bb", "cc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(tt.size, tt.overlap)
			assert.Equal(t, tt.want, c.ChunkText(tt.text))
		})
	}
}

func TestChunker_ChunksRespectSize(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 50)
	c := NewChunker(64, 16)

	chunks := c.ChunkText(text)
	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 64)
	}
}
