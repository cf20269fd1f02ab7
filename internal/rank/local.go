// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"sort"
	"time"

	"github.com/pdiddy/news-engine/pkg/types"
)

// Local-mode blend weights: with no semantic signal available, lexical
// evidence carries most of the score.
const (
	localKeywordWeight = 0.7
	localRecencyWeight = 0.3
)

// Local ranks raw documents by lexical and recency evidence alone — the
// index-free fallback when no embedding service is configured. It reuses the
// engine's scorers (weighted term frequency normalized by the pool max,
// continuous recency decay) and the same stable-ordering and truncation
// rules as Rank.
func Local(docs []types.Document, query string, k int, now time.Time, tauDays float64) []types.ScoredResult {
	if k <= 0 || len(docs) == 0 {
		return nil
	}

	pool := make([]Candidate, 0, len(docs))
	for i, d := range docs {
		pool = append(pool, Candidate{
			Idx:         i,
			Title:       d.Title,
			Summary:     d.Summary,
			URL:         d.URL,
			PublishedAt: d.PublishedAt,
			Source:      d.Source,
			KeywordRaw:  KeywordScore(query, d.Title, d.Summary),
			Recency:     RecencyScore(d.PublishedAt, now, tauDays),
		})
	}

	normalizeKeyword(pool)
	for i := range pool {
		pool[i].Final = localKeywordWeight*pool[i].KeywordNorm + localRecencyWeight*pool[i].Recency
	}

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
	return results
}
