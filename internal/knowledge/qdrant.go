package knowledge

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// QdrantStore stores knowledge chunks in a Qdrant collection
type QdrantStore struct {
	client     *qdrant.Client
	collection string
	minScore   float32
}

// NewQdrantStore connects to Qdrant over gRPC
func NewQdrantStore(host string, port int, collection string, minScore float64) (*QdrantStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client:     client,
		collection: collection,
		minScore:   float32(minScore),
	}, nil
}

// Close releases the gRPC connection
func (s *QdrantStore) Close() error {
	return s.client.Close()
}

// EnsureCollection creates the collection with cosine distance if it is missing
func (s *QdrantStore) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// UpsertPoints writes points and waits for them to be indexed
func (s *QdrantStore) UpsertPoints(ctx context.Context, points []*qdrant.PointStruct) error {
	wait := true
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// Search returns the closest chunks scoring at least the configured minimum
func (s *QdrantStore) Search(ctx context.Context, vector []float32, limit uint64) ([]Match, error) {
	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		ScoreThreshold: &s.minScore,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, result := range results {
		text := result.GetPayload()[payloadText].GetStringValue()
		if text == "" {
			continue
		}
		matches = append(matches, Match{
			Text:   text,
			Source: result.GetPayload()[payloadSource].GetStringValue(),
			Score:  result.GetScore(),
		})
	}

	return matches, nil
}
