package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vokinneberg/sigma-ai/internal/types"
)

type ingestRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

func main() {
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		slog.Error("Usage: ingest-docs <server-url> [-dir path]")
		os.Exit(1)
	}
	serverURL := strings.TrimRight(os.Args[1], "/")

	fs := flag.NewFlagSet("ingest-docs", flag.ExitOnError)
	dir := fs.String("dir", "testdata/docs", "directory with .txt and .md documents")
	timeout := fs.Duration("timeout", 2*time.Minute, "per-document request timeout")
	_ = fs.Parse(os.Args[2:])

	files, err := documentFiles(*dir)
	if err != nil {
		slog.Error("Failed to read documents directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		slog.Error("No .txt or .md files found", "dir", *dir)
		os.Exit(1)
	}

	client := &http.Client{Timeout: *timeout}
	failed := 0
	for _, file := range files {
		resp, err := ingestFile(context.Background(), client, serverURL, file)
		if err != nil {
			slog.Error("Failed to ingest file", "file", file, "error", err)
			failed++
			continue
		}
		slog.Info("Successfully ingested file", "file", file, "source", resp.Source, "chunks", resp.Chunks)
	}

	if failed > 0 {
		slog.Error("Ingestion finished with failures", "failed", failed, "total", len(files))
		os.Exit(1)
	}
	slog.Info("Ingestion complete!", "files", len(files))
}

// documentFiles lists ingestable files in dir, sorted by name
func documentFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.txt", "*.md"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// ingestFile posts one document to the knowledge endpoint. The file's base
// name is the source.
func ingestFile(ctx context.Context, client *http.Client, serverURL, file string) (types.IngestResponse, error) {
	var result types.IngestResponse

	content, err := os.ReadFile(file)
	if err != nil {
		return result, fmt.Errorf("failed to read file: %w", err)
	}

	jsonData, err := json.Marshal(ingestRequest{Text: string(content), Source: filepath.Base(file)})
	if err != nil {
		return result, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL+"/knowledge", bytes.NewReader(jsonData))
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp types.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return result, fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Error)
		}
		return result, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
