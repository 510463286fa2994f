package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient answers prompts with the Gemini API
type GeminiClient struct {
	client     *genai.Client
	model      string
	embedModel string
	embedDim   int
}

// NewGeminiClient creates a Gemini client. httpOptions may override the
// API endpoint.
func NewGeminiClient(ctx context.Context, apiKey, model string, httpOptions ...genai.HTTPOptions) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(httpOptions) > 0 {
		cc.HTTPOptions = httpOptions[0]
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// WithEmbeddings sets the embedding model and output dimension
func (c *GeminiClient) WithEmbeddings(model string, dimension int) *GeminiClient {
	c.embedModel = model
	c.embedDim = dimension
	return c
}

// Complete generates content for a single-turn prompt
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", nil
	}

	return resp.Text(), nil
}

// Embed generates an embedding for the given text
func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	var embedConfig *genai.EmbedContentConfig
	if c.embedDim > 0 {
		dim := int32(c.embedDim)
		embedConfig = &genai.EmbedContentConfig{OutputDimensionality: &dim}
	}

	result, err := c.client.Models.EmbedContent(ctx, c.embedModel, genai.Text(text), embedConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("no embedding returned from API")
	}

	return result.Embeddings[0].Values, nil
}
