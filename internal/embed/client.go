// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package embed turns document and query text into unit-length vectors via
// any OpenAI-compatible embeddings API.
package embed

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/pdiddy/news-engine/pkg/types"
)

// DefaultModel is used when no embedding model is configured. Index and
// query embeddings must come from the same model; the build records it in
// the manifest.
const DefaultModel = "text-embedding-3-small"

// DefaultBatchSize is the number of texts sent per embeddings request.
const DefaultBatchSize = 32

// Embedder produces unit-length embedding vectors for text.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery returns the vector for a single query string.
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// Client calls an OpenAI-compatible embeddings endpoint.
type Client struct {
	api   *openai.Client
	model string
	batch int
}

// NewClient builds a Client from cfg. A custom BaseURL selects any
// OpenAI-compatible service; without one the provider default is used and
// an API key is required.
func NewClient(cfg types.EmbeddingConfig) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("embedding API key not configured")
		}
		// Local OpenAI-compatible services often run without authentication,
		// but the client requires a non-empty key.
		apiKey = "unused"
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: model,
		batch: batch,
	}, nil
}

// Model returns the embedding model identifier this client sends.
func (c *Client) Model() string {
	return c.model
}

// Embed embeds texts in batches, returning unit-length vectors in input
// order. The API may return rows out of order; rows are placed by their
// reported index.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))
	for start := 0; start < len(texts); start += c.batch {
		end := start + c.batch
		if end > len(texts) {
			end = len(texts)
		}

		resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: texts[start:end],
			Model: openai.EmbeddingModel(c.model),
		})
		if err != nil {
			return nil, fmt.Errorf("embedding batch at %d: %w", start, err)
		}
		if len(resp.Data) != end-start {
			return nil, fmt.Errorf("embedding batch at %d: got %d vectors for %d inputs",
				start, len(resp.Data), end-start)
		}
		for _, row := range resp.Data {
			if row.Index < 0 || row.Index >= end-start {
				return nil, fmt.Errorf("embedding batch at %d: vector index %d out of range",
					start, row.Index)
			}
			vectors[start+row.Index] = normalize(row.Embedding)
		}
	}
	return vectors, nil
}

// EmbedQuery embeds a single query string.
func (c *Client) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := c.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// normalize scales v to unit length so inner products are cosine
// similarities. A zero vector is returned unchanged.
func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
