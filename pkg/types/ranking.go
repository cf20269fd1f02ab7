// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Hit is one nearest-neighbour match from the vector index. An ID of -1 is
// the sentinel for "no further matches" and carries no score; consumers skip
// sentinel hits.
type Hit struct {
	// ID is the positional document identifier, indexing the metadata table
	// aligned with the vector ordering. Negative means no match.
	ID int `json:"id" yaml:"id"`

	// Score is the raw similarity between query and document vectors
	// (inner product over unit vectors; higher is more similar).
	Score float64 `json:"score" yaml:"score"`
}

// ScoredResult is one ranked search result with its full score breakdown.
// The JSON field names are a stable contract: downstream consumers plot the
// per-component values, so renaming them is a breaking change.
type ScoredResult struct {
	// Title is the document headline.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical article link.
	URL string `json:"url" yaml:"url"`

	// PublishedAt is the publication time in RFC 3339 UTC, or empty when unknown.
	PublishedAt string `json:"published_at" yaml:"published_at"`

	// Source is the URL of the feed the document came from.
	Source string `json:"source" yaml:"source"`

	// Final is the blended ranking score. Weights sum to 1 but penalties
	// can push it below the nominal range; it is a total-order key, not a
	// probability.
	Final float64 `json:"score_final" yaml:"score_final"`

	// Semantic is the pool-normalized semantic score in [0,1].
	Semantic float64 `json:"score_semantic" yaml:"score_semantic"`

	// Keyword is the pool-normalized lexical score in [0,1].
	Keyword float64 `json:"score_keyword" yaml:"score_keyword"`

	// Recency is the exponential freshness score in [0,1].
	Recency float64 `json:"score_recency" yaml:"score_recency"`

	// SemanticRaw is the unnormalized similarity from the retriever.
	SemanticRaw float64 `json:"semantic_raw" yaml:"semantic_raw"`

	// KeywordRaw is the unnormalized lexical score.
	KeywordRaw float64 `json:"keyword_raw" yaml:"keyword_raw"`
}
