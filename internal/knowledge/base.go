package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

//go:generate mockgen -source=base.go -destination=mock_base.go -package=knowledge

const (
	payloadText   = "text"
	payloadSource = "source"
	payloadChunk  = "chunk_index"
)

// Embedder defines the interface for text embedding
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// TextChunker defines the interface for text chunking operations
type TextChunker interface {
	ChunkText(text string) []string
}

// VectorStore defines the interface for vector database operations
type VectorStore interface {
	EnsureCollection(ctx context.Context, vectorSize uint64) error
	UpsertPoints(ctx context.Context, points []*qdrant.PointStruct) error
	Search(ctx context.Context, vector []float32, limit uint64) ([]Match, error)
}

// Match is a stored chunk returned by a similarity search
type Match struct {
	Text   string
	Source string
	Score  float32
}

// IngestResult describes a stored document
type IngestResult struct {
	Source string
	Chunks int
}

// Base is a document store that supplies question context
type Base struct {
	chunker     TextChunker
	embedder    Embedder
	store       VectorStore
	searchLimit int
}

// NewBase creates a knowledge base and makes sure the collection exists
func NewBase(ctx context.Context, chunker TextChunker, embedder Embedder, store VectorStore, vectorSize uint64, searchLimit int) (*Base, error) {
	if err := store.EnsureCollection(ctx, vectorSize); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	return &Base{
		chunker:     chunker,
		embedder:    embedder,
		store:       store,
		searchLimit: searchLimit,
	}, nil
}

// Ingest chunks, embeds and stores a document. Point ids derive from the
// source name, so ingesting the same source again overwrites its chunks.
// An empty source gets a random one.
func (b *Base) Ingest(ctx context.Context, text, source string) (IngestResult, error) {
	chunks := b.chunker.ChunkText(text)
	if len(chunks) == 0 {
		return IngestResult{}, fmt.Errorf("no chunks created from text")
	}

	if source == "" {
		source = uuid.NewString()
	}

	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := b.embedder.Embed(ctx, chunk)
		if err != nil {
			return IngestResult{}, fmt.Errorf("failed to generate embedding for chunk %d: %w", i, err)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID(source, i)),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				payloadText:   chunk,
				payloadSource: source,
				payloadChunk:  int64(i),
			}),
		})
	}

	if err := b.store.UpsertPoints(ctx, points); err != nil {
		return IngestResult{}, fmt.Errorf("failed to upsert points: %w", err)
	}

	return IngestResult{Source: source, Chunks: len(chunks)}, nil
}

// Retrieve returns the best matching chunks joined into one context block.
// No match yields an empty string and no error.
func (b *Base) Retrieve(ctx context.Context, question string) (string, error) {
	embedding, err := b.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to generate query embedding: %w", err)
	}

	matches, err := b.store.Search(ctx, embedding, uint64(b.searchLimit))
	if err != nil {
		return "", fmt.Errorf("failed to search: %w", err)
	}

	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", m.Source, m.Text))
	}

	return strings.Join(blocks, "\n\n"), nil
}

func pointID(source string, chunk int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s#%d", source, chunk))).String()
}
