// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/news-engine/pkg/types"
)

// Wire shapes of the OpenAI-compatible embeddings endpoint.
type embRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embRow struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

type embResponse struct {
	Object string   `json:"object"`
	Data   []embRow `json:"data"`
	Model  string   `json:"model"`
}

// fakeEmbeddings serves /embeddings, deriving each vector from the input
// text via vecFor and returning rows in reverse order so placement must go
// through the row index. batchSizes records the input length of every call.
func fakeEmbeddings(t *testing.T, vecFor func(text string) []float32, batchSizes *[]int) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embeddings", r.URL.Path)

		var req embRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*batchSizes = append(*batchSizes, len(req.Input))

		resp := embResponse{Object: "list", Model: req.Model}
		for i := len(req.Input) - 1; i >= 0; i-- {
			resp.Data = append(resp.Data, embRow{
				Object:    "embedding",
				Embedding: vecFor(req.Input[i]),
				Index:     i,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestEmbed_BatchingAndPlacement(t *testing.T) {
	// One-hot unit vectors keyed by text: row i of the output must carry
	// the vector for text i even though the server answers in reverse.
	texts := []string{"t0", "t1", "t2", "t3", "t4"}
	oneHot := func(text string) []float32 {
		v := make([]float32, len(texts))
		for i, want := range texts {
			if text == want {
				v[i] = 1
			}
		}
		return v
	}

	var batchSizes []int
	ts := fakeEmbeddings(t, oneHot, &batchSizes)

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL, BatchSize: 2})
	require.NoError(t, err)

	vectors, err := client.Embed(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, len(texts))

	assert.Equal(t, []int{2, 2, 1}, batchSizes)
	for i, v := range vectors {
		assert.InDelta(t, 1.0, v[i], 1e-6, "row %d not placed by index", i)
	}
}

func TestEmbed_NormalizesToUnitLength(t *testing.T) {
	var batchSizes []int
	ts := fakeEmbeddings(t, func(string) []float32 { return []float32{3, 4} }, &batchSizes)

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	vectors, err := client.Embed(context.Background(), []string{"anything"})
	require.NoError(t, err)
	require.Len(t, vectors, 1)

	assert.InDelta(t, 0.6, vectors[0][0], 1e-6)
	assert.InDelta(t, 0.8, vectors[0][1], 1e-6)

	var norm float64
	for _, x := range vectors[0] {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestEmbed_EmptyInputMakesNoCalls(t *testing.T) {
	var batchSizes []int
	ts := fakeEmbeddings(t, func(string) []float32 { return []float32{1} }, &batchSizes)

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	vectors, err := client.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
	assert.Empty(t, batchSizes)
}

func TestEmbed_RowCountMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := embResponse{
			Object: "list",
			Data:   []embRow{{Object: "embedding", Embedding: []float32{1}, Index: 0}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer ts.Close()

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 1 vectors for 2 inputs")
}

func TestEmbed_ServerErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding batch at 0")
}

func TestEmbedQuery(t *testing.T) {
	var batchSizes []int
	ts := fakeEmbeddings(t, func(string) []float32 { return []float32{0, 1} }, &batchSizes)

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	vec, err := client.EmbedQuery(context.Background(), "cargo launch")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, vec)
	assert.Equal(t, []int{1}, batchSizes)
}

func TestNewClient_Defaults(t *testing.T) {
	_, err := NewClient(types.EmbeddingConfig{})
	require.Error(t, err, "no key and no base URL must fail")

	client, err := NewClient(types.EmbeddingConfig{BaseURL: "http://localhost:9/v1"})
	require.NoError(t, err, "a base URL alone is enough for local services")
	assert.Equal(t, DefaultModel, client.Model())

	client, err = NewClient(types.EmbeddingConfig{APIKey: "sk-test", Model: "custom-model"})
	require.NoError(t, err)
	assert.Equal(t, "custom-model", client.Model())
}

func TestEmbed_ContextCancelled(t *testing.T) {
	ts := fakeEmbeddings(t, func(string) []float32 { return []float32{1} }, &[]int{})

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Embed(ctx, []string{"a"})
	require.Error(t, err)
}

// Guards the batch arithmetic at the boundary: an exact multiple of the
// batch size must not issue a trailing empty request.
func TestEmbed_ExactBatchMultiple(t *testing.T) {
	var batchSizes []int
	ts := fakeEmbeddings(t, func(string) []float32 { return []float32{1} }, &batchSizes)

	client, err := NewClient(types.EmbeddingConfig{BaseURL: ts.URL, BatchSize: 2})
	require.NoError(t, err)

	vectors, err := client.Embed(context.Background(), []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Len(t, vectors, 4)
	assert.Equal(t, []int{2, 2}, batchSizes)
}
