// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds, persists, and queries the flat vector index behind
// semantic retrieval. Exact brute-force search: at news-corpus scale a full
// scan beats approximate structures and never misses.
package index

import (
	"fmt"
	"sort"

	"github.com/pdiddy/news-engine/pkg/types"
)

// Flat is an exact inner-product index. Vectors are unit length, so the
// inner product is cosine similarity; row position is the document id.
type Flat struct {
	dims    int
	vectors [][]float32
}

// NewFlat returns an empty index for vectors of the given width.
func NewFlat(dims int) (*Flat, error) {
	if dims <= 0 {
		return nil, fmt.Errorf("index dimensions must be positive, got %d", dims)
	}
	return &Flat{dims: dims}, nil
}

// Len returns the number of indexed vectors.
func (f *Flat) Len() int { return len(f.vectors) }

// Dims returns the vector width.
func (f *Flat) Dims() int { return f.dims }

// Add appends vectors to the index in id order.
func (f *Flat) Add(vecs ...[]float32) error {
	for _, v := range vecs {
		if len(v) != f.dims {
			return fmt.Errorf("vector has %d dimensions, index has %d", len(v), f.dims)
		}
	}
	f.vectors = append(f.vectors, vecs...)
	return nil
}

// Search returns the k most similar vectors to query, highest score first,
// ties broken by lower id. The result always has exactly k entries: when the
// index holds fewer vectors, sentinel hits (ID -1) pad the tail, matching
// what callers expect from a fixed-k nearest-neighbour query.
func (f *Flat) Search(query []float32, k int) ([]types.Hit, error) {
	if len(query) != f.dims {
		return nil, fmt.Errorf("query has %d dimensions, index has %d", len(query), f.dims)
	}
	if k <= 0 {
		return nil, nil
	}

	hits := make([]types.Hit, 0, len(f.vectors))
	for i, v := range f.vectors {
		hits = append(hits, types.Hit{ID: i, Score: dot(query, v)})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	for len(hits) < k {
		hits = append(hits, types.Hit{ID: -1})
	}
	return hits, nil
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
