package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdrant/go-client/qdrant"
)

const testVectorSize = 4

func testEmbedding(scale float32) []float32 {
	embedding := make([]float32, testVectorSize)
	for i := range embedding {
		embedding[i] = float32(i+1) * scale
	}
	return embedding
}

func TestNewBase(t *testing.T) {
	tests := []struct {
		name        string
		ensureErr   error
		wantErr     bool
		errContains string
	}{
		{
			name: "successful creation",
		},
		{
			name:        "collection creation fails",
			ensureErr:   errors.New("connection failed"),
			wantErr:     true,
			errContains: "failed to ensure collection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockVectorStore(ctrl)
			store.EXPECT().EnsureCollection(gomock.Any(), uint64(testVectorSize)).Return(tt.ensureErr)

			base, err := NewBase(context.Background(), NewChunker(100, 20), NewMockEmbedder(ctrl), store, testVectorSize, 3)

			if tt.wantErr {
				if err == nil {
					t.Fatal("NewBase() expected error but got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewBase() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewBase() unexpected error: %v", err)
			}
			if base.searchLimit != 3 {
				t.Errorf("NewBase() searchLimit = %d, want 3", base.searchLimit)
			}
		})
	}
}

func TestBase_Ingest(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		source      string
		setupMocks  func(*MockTextChunker, *MockEmbedder, *MockVectorStore)
		wantChunks  int
		wantErr     bool
		errContains string
	}{
		{
			name:   "successful ingestion",
			text:   "Hamlet is a tragedy. It was written by Shakespeare.",
			source: "hamlet.txt",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorStore) {
				chunks := []string{"Hamlet is a tragedy.", "It was written by Shakespeare."}
				chunker.EXPECT().ChunkText("Hamlet is a tragedy. It was written by Shakespeare.").Return(chunks)
				embedder.EXPECT().Embed(gomock.Any(), chunks[0]).Return(testEmbedding(0.1), nil)
				embedder.EXPECT().Embed(gomock.Any(), chunks[1]).Return(testEmbedding(0.2), nil)

				store.EXPECT().UpsertPoints(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, points []*qdrant.PointStruct) error {
						if len(points) != 2 {
							return errors.New("unexpected number of points")
						}
						if points[0].GetId().GetUuid() != pointID("hamlet.txt", 0) {
							return errors.New("unexpected point id")
						}
						if got := points[1].GetPayload()[payloadSource].GetStringValue(); got != "hamlet.txt" {
							return errors.New("unexpected source payload " + got)
						}
						return nil
					},
				)
			},
			wantChunks: 2,
		},
		{
			name: "empty text after chunking",
			text: "   ",
			setupMocks: func(chunker *MockTextChunker, _ *MockEmbedder, _ *MockVectorStore) {
				chunker.EXPECT().ChunkText("   ").Return(nil)
			},
			wantErr:     true,
			errContains: "no chunks created",
		},
		{
			name: "embedding generation fails",
			text: "test document",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, _ *MockVectorStore) {
				chunker.EXPECT().ChunkText("test document").Return([]string{"test document"})
				embedder.EXPECT().Embed(gomock.Any(), "test document").Return(nil, errors.New("API error"))
			},
			wantErr:     true,
			errContains: "failed to generate embedding",
		},
		{
			name: "upsert fails",
			text: "test document",
			setupMocks: func(chunker *MockTextChunker, embedder *MockEmbedder, store *MockVectorStore) {
				chunker.EXPECT().ChunkText("test document").Return([]string{"test document"})
				embedder.EXPECT().Embed(gomock.Any(), "test document").Return(testEmbedding(0.1), nil)
				store.EXPECT().UpsertPoints(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:     true,
			errContains: "failed to upsert points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			chunker := NewMockTextChunker(ctrl)
			embedder := NewMockEmbedder(ctrl)
			store := NewMockVectorStore(ctrl)
			store.EXPECT().EnsureCollection(gomock.Any(), uint64(testVectorSize)).Return(nil)
			tt.setupMocks(chunker, embedder, store)

			base, err := NewBase(context.Background(), chunker, embedder, store, testVectorSize, 3)
			if err != nil {
				t.Fatalf("NewBase() failed: %v", err)
			}

			result, err := base.Ingest(context.Background(), tt.text, tt.source)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Ingest() expected error but got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Ingest() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Ingest() unexpected error: %v", err)
			}
			if result.Chunks != tt.wantChunks {
				t.Errorf("Ingest() chunks = %d, want %d", result.Chunks, tt.wantChunks)
			}
			if result.Source != tt.source {
				t.Errorf("Ingest() source = %q, want %q", result.Source, tt.source)
			}
		})
	}
}

func TestBase_IngestGeneratesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	store := NewMockVectorStore(ctrl)
	store.EXPECT().EnsureCollection(gomock.Any(), gomock.Any()).Return(nil)
	embedder.EXPECT().Embed(gomock.Any(), "some text").Return(testEmbedding(0.1), nil)
	store.EXPECT().UpsertPoints(gomock.Any(), gomock.Any()).Return(nil)

	base, err := NewBase(context.Background(), NewChunker(100, 0), embedder, store, testVectorSize, 3)
	if err != nil {
		t.Fatalf("NewBase() failed: %v", err)
	}

	result, err := base.Ingest(context.Background(), "some text", "")
	if err != nil {
		t.Fatalf("Ingest() unexpected error: %v", err)
	}
	if result.Source == "" {
		t.Error("Ingest() expected a generated source")
	}
}

func TestBase_Retrieve(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockEmbedder, *MockVectorStore)
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name: "successful retrieval",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorStore) {
				embedding := testEmbedding(0.1)
				embedder.EXPECT().Embed(gomock.Any(), "who wrote hamlet").Return(embedding, nil)
				store.EXPECT().Search(gomock.Any(), embedding, uint64(3)).Return([]Match{
					{Text: "Hamlet is a tragedy.", Source: "hamlet.txt", Score: 0.9},
					{Text: "Shakespeare wrote plays.", Source: "bard.txt", Score: 0.8},
				}, nil)
			},
			want: "[hamlet.txt]\nHamlet is a tragedy.\n\n[bard.txt]\nShakespeare wrote plays.",
		},
		{
			name: "no results is empty context",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorStore) {
				embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(testEmbedding(0.1), nil)
				store.EXPECT().Search(gomock.Any(), gomock.Any(), uint64(3)).Return(nil, nil)
			},
			want: "",
		},
		{
			name: "embedding generation fails",
			setupMocks: func(embedder *MockEmbedder, _ *MockVectorStore) {
				embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, errors.New("API error"))
			},
			wantErr:     true,
			errContains: "failed to generate query embedding",
		},
		{
			name: "search fails",
			setupMocks: func(embedder *MockEmbedder, store *MockVectorStore) {
				embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(testEmbedding(0.1), nil)
				store.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("search error"))
			},
			wantErr:     true,
			errContains: "failed to search",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			embedder := NewMockEmbedder(ctrl)
			store := NewMockVectorStore(ctrl)
			store.EXPECT().EnsureCollection(gomock.Any(), gomock.Any()).Return(nil)
			tt.setupMocks(embedder, store)

			base, err := NewBase(context.Background(), NewMockTextChunker(ctrl), embedder, store, testVectorSize, 3)
			if err != nil {
				t.Fatalf("NewBase() failed: %v", err)
			}

			got, err := base.Retrieve(context.Background(), "who wrote hamlet")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Retrieve() expected error but got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Retrieve() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Retrieve() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Retrieve() = %q, want %q", got, tt.want)
			}
		})
	}
}
