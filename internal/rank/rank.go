// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank implements the hybrid ranking engine: it assembles candidates
// from vector-retriever hits, scores them lexically and by recency,
// normalizes the pool, applies penalty rules, and blends everything into a
// single ranked list.
package rank

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pdiddy/news-engine/pkg/types"
)

// Blend weights for the hybrid score. They sum to 1.0 and are part of the
// scoring contract, not configuration.
const (
	SemanticWeight = 0.45
	KeywordWeight  = 0.35
	RecencyWeight  = 0.20
)

// DefaultPoolSize bounds the candidate pool taken from the retriever per
// query; the effective pool is min(pool size, corpus size).
const DefaultPoolSize = 50

// mustHavePenalty demotes candidates that fail the must-have gate. A soft
// constraint: topically weak matches stay visible but sink.
const mustHavePenalty = 0.6

// Retriever supplies nearest-neighbour hits for a query, ordered most
// similar first. Implementations pad with sentinel hits (negative ID) when
// fewer than k matches exist.
type Retriever interface {
	Nearest(ctx context.Context, query string, k int) ([]types.Hit, error)
}

// Corpus supplies the metadata and raw-text tables, addressed by the same
// positional id space as the retriever's vector ordering.
type Corpus interface {
	// Len returns the number of metadata rows.
	Len() int

	// Meta returns the metadata row for id; ok is false when the row is absent.
	Meta(id int) (types.DocumentMeta, bool)

	// Text returns the raw text for id, or the zero value when the raw row
	// is missing — a missing summary degrades scoring, it does not skip the
	// document.
	Text(id int) types.DocumentText
}

// Candidate is a document joined with its per-query scoring fields. Built
// fresh for each query and discarded afterwards.
type Candidate struct {
	Idx         int
	Title       string
	Summary     string
	URL         string
	PublishedAt string
	Source      string

	SemanticRaw  float64
	KeywordRaw   float64
	Recency      float64
	SemanticNorm float64
	KeywordNorm  float64
	Final        float64
}

// result converts a scored candidate into the public result record.
func (c Candidate) result() types.ScoredResult {
	return types.ScoredResult{
		Title:       c.Title,
		URL:         c.URL,
		PublishedAt: c.PublishedAt,
		Source:      c.Source,
		Final:       c.Final,
		Semantic:    c.SemanticNorm,
		Keyword:     c.KeywordNorm,
		Recency:     c.Recency,
		SemanticRaw: c.SemanticRaw,
		KeywordRaw:  c.KeywordRaw,
	}
}

// penaltyRule demotes candidates that fail a topical predicate. Rules apply
// in order after blending; each failing rule multiplies the score by its
// factor. New rules append to penaltyRules.
type penaltyRule struct {
	name   string
	passes func(query string, c *Candidate) bool
	factor float64
}

var penaltyRules = []penaltyRule{
	{
		name: "must-have",
		passes: func(query string, c *Candidate) bool {
			return MustHaveGate(query, c.Title, c.Summary)
		},
		factor: mustHavePenalty,
	},
}

// Engine ranks documents for a query by blending semantic, lexical, and
// recency signals. It processes one query fully before returning and keeps
// no per-query state, so a single Engine is safe for concurrent use as long
// as its retriever and corpus are read-only.
type Engine struct {
	retriever Retriever
	corpus    Corpus
	cfg       types.RankingConfig
	now       func() time.Time
}

// New returns an Engine over the given retriever and corpus.
func New(retriever Retriever, corpus Corpus, cfg types.RankingConfig) *Engine {
	return &Engine{
		retriever: retriever,
		corpus:    corpus,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (e *Engine) poolSize() int {
	if e.cfg.PoolSize > 0 {
		return e.cfg.PoolSize
	}
	return DefaultPoolSize
}

func (e *Engine) tau() float64 {
	if e.cfg.TauDays > 0 {
		return e.cfg.TauDays
	}
	return DefaultTauDays
}

// Rank scores and orders documents for query, returning at most k results
// with their full score breakdown. k <= 0 and an empty candidate pool both
// yield an empty list with a nil error; retriever failures propagate so
// callers can tell "no results" from "service unavailable".
func (e *Engine) Rank(ctx context.Context, query string, k int) ([]types.ScoredResult, error) {
	if k <= 0 {
		return nil, nil
	}

	candK := e.poolSize()
	if n := e.corpus.Len(); n < candK {
		candK = n
	}
	if candK == 0 {
		return nil, nil
	}

	hits, err := e.retriever.Nearest(ctx, query, candK)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates: %w", err)
	}

	pool := e.assemble(query, hits)
	if len(pool) == 0 {
		return nil, nil
	}

	normalizeSemantic(pool)
	normalizeKeyword(pool)
	for i := range pool {
		blendScore(&pool[i], query)
	}

	// Stable sort: ties keep retriever pool order, first seen wins.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Final > pool[j].Final
	})

	if k > len(pool) {
		k = len(pool)
	}
	results := make([]types.ScoredResult, 0, k)
	for _, c := range pool[:k] {
		results = append(results, c.result())
	}
	return results, nil
}

// Semantic returns vector-only results: the k nearest documents with the raw
// similarity as the final score. No normalization, gating, or lexical signal.
func (e *Engine) Semantic(ctx context.Context, query string, k int) ([]types.ScoredResult, error) {
	if k <= 0 {
		return nil, nil
	}
	hits, err := e.retriever.Nearest(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("retrieving candidates: %w", err)
	}
	results := make([]types.ScoredResult, 0, len(hits))
	for _, h := range hits {
		if h.ID < 0 || h.ID >= e.corpus.Len() {
			continue
		}
		meta, ok := e.corpus.Meta(h.ID)
		if !ok {
			continue
		}
		results = append(results, types.ScoredResult{
			Title:       meta.Title,
			URL:         meta.URL,
			PublishedAt: meta.PublishedAt,
			Source:      meta.Source,
			Final:       h.Score,
			SemanticRaw: h.Score,
		})
	}
	return results, nil
}

// assemble joins retriever hits with corpus rows, skipping the no-match
// sentinel and ids outside the metadata table. Retriever order is preserved;
// it becomes the tie-break order for the final sort.
func (e *Engine) assemble(query string, hits []types.Hit) []Candidate {
	now := e.now()
	tau := e.tau()
	pool := make([]Candidate, 0, len(hits))
	for _, h := range hits {
		if h.ID < 0 || h.ID >= e.corpus.Len() {
			continue
		}
		meta, ok := e.corpus.Meta(h.ID)
		if !ok {
			continue
		}
		text := e.corpus.Text(h.ID)
		pool = append(pool, Candidate{
			Idx:         h.ID,
			Title:       meta.Title,
			Summary:     text.Summary,
			URL:         meta.URL,
			PublishedAt: meta.PublishedAt,
			Source:      meta.Source,
			SemanticRaw: h.Score,
			KeywordRaw:  KeywordScore(query, meta.Title, text.Summary),
			Recency:     RecencyScore(meta.PublishedAt, now, tau),
		})
	}
	return pool
}

// blendScore combines the normalized signals with the fixed weights, then
// applies the penalty rules in order.
func blendScore(c *Candidate, query string) {
	score := SemanticWeight*c.SemanticNorm + KeywordWeight*c.KeywordNorm + RecencyWeight*c.Recency
	for _, rule := range penaltyRules {
		if !rule.passes(query, c) {
			score *= rule.factor
		}
	}
	c.Final = score
}
