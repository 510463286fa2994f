package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient answers prompts with OpenAI chat completions
type OpenAIClient struct {
	client     *openai.Client
	model      string
	embedModel string
	embedDim   int
}

// NewOpenAIClient creates a new OpenAI client with API key
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  model,
	}
}

// WithEmbeddings sets the embedding model and output dimension
func (c *OpenAIClient) WithEmbeddings(model string, dimension int) *OpenAIClient {
	c.embedModel = model
	c.embedDim = dimension
	return c
}

// Complete sends the prompt as a single user message
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", nil
	}

	return res.Choices[0].Message.Content, nil
}

// Embed generates an embedding for the given text
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	}
	if c.embedDim > 0 {
		params.Dimensions = openai.Int(int64(c.embedDim))
	}

	res, err := c.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	// Qdrant stores float32 vectors
	embedding := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}
