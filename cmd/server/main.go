package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vokinneberg/sigma-ai/internal/config"
	"github.com/vokinneberg/sigma-ai/internal/knowledge"
	"github.com/vokinneberg/sigma-ai/internal/llm"
	"github.com/vokinneberg/sigma-ai/internal/qa"

	httphandler "github.com/vokinneberg/sigma-ai/internal/http"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env", "error", err)
	}

	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Server.SlogLevel(),
	})))

	ctx := context.Background()

	// Initialize completion client
	completer, err := llm.NewCompleter(ctx, cfg.LLM)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err, "provider", cfg.LLM.Provider)
		os.Exit(1)
	}
	slog.Info("Initialized LLM client", "provider", cfg.LLM.Provider)

	// Knowledge base is optional; both stay untyped nil when disabled
	var (
		retriever qa.Retriever
		kb        httphandler.KnowledgeBase
	)
	if cfg.Knowledge.Enabled {
		base, closeStore, err := newKnowledgeBase(ctx, cfg)
		if err != nil {
			slog.Error("Failed to create knowledge base", "error", err)
			os.Exit(1)
		}
		defer closeStore()

		retriever, kb = base, base
		slog.Info("Initialized knowledge base",
			"collection", cfg.Knowledge.QdrantCollection,
			"embed_provider", cfg.Knowledge.EmbedProvider,
		)
	}

	answerer := qa.NewAnswerer(completer, retriever)
	if cfg.FAQ.Enabled {
		faq, err := loadFAQ(cfg.FAQ.Path)
		if err != nil {
			slog.Error("Failed to load FAQ", "error", err, "path", cfg.FAQ.Path)
			os.Exit(1)
		}
		answerer.WithFAQ(faq)
		slog.Info("Loaded FAQ", "entries", faq.Len())
	}

	service := qa.NewService(answerer)

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(service, kb)

	pages, err := httphandler.NewPages(cfg.Server.SessionSecret)
	if err != nil {
		slog.Error("Failed to load pages", "error", err)
		os.Exit(1)
	}

	// Create router
	r := httphandler.NewRouter(handler, pages, cfg.Server.CORSOrigins)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// newKnowledgeBase connects to Qdrant and prepares the collection.
// The returned func closes the store connection.
func newKnowledgeBase(ctx context.Context, cfg *config.Config) (*knowledge.Base, func(), error) {
	kc := cfg.Knowledge

	store, err := knowledge.NewQdrantStore(kc.QdrantHost, kc.QdrantPort, kc.QdrantCollection, kc.MinScore)
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close Qdrant client", "error", err)
		}
	}

	embedder, err := llm.NewEmbedder(ctx, cfg)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	chunker := knowledge.NewChunker(kc.ChunkSize, kc.ChunkOverlap)
	base, err := knowledge.NewBase(ctx, chunker, embedder, store, uint64(kc.EmbedDimension), kc.SearchLimit)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	return base, closeStore, nil
}

// loadFAQ reads the FAQ at path, or the built-in one when path is empty
func loadFAQ(path string) (*qa.FAQ, error) {
	if path == "" {
		return qa.DefaultFAQ()
	}
	return qa.LoadFAQ(path)
}
