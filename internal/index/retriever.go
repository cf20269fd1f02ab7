// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"

	"github.com/pdiddy/news-engine/internal/embed"
	"github.com/pdiddy/news-engine/pkg/types"
)

// Retriever answers nearest-neighbour queries by embedding the query text
// and scanning the flat index.
type Retriever struct {
	embedder embed.Embedder
	flat     *Flat
}

// NewRetriever pairs an embedder with a loaded index. The embedder must use
// the model recorded in the index manifest.
func NewRetriever(embedder embed.Embedder, flat *Flat) *Retriever {
	return &Retriever{embedder: embedder, flat: flat}
}

// Nearest returns the k most similar documents to query.
func (r *Retriever) Nearest(ctx context.Context, query string, k int) ([]types.Hit, error) {
	vec, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return r.flat.Search(vec, k)
}
