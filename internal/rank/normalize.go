// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import "math"

// epsilon floors normalization denominators so degenerate pools (all raw
// values equal) divide to 0 instead of panicking.
const epsilon = 1e-9

// normalizeSemantic min-max rescales the pool's raw similarities into [0,1]:
// the maximum maps to 1, the minimum to 0, and an all-equal pool collapses
// to all zeros. Constants are computed over this pool only.
func normalizeSemantic(pool []Candidate) {
	if len(pool) == 0 {
		return
	}
	minRaw, maxRaw := pool[0].SemanticRaw, pool[0].SemanticRaw
	for _, c := range pool[1:] {
		if c.SemanticRaw < minRaw {
			minRaw = c.SemanticRaw
		}
		if c.SemanticRaw > maxRaw {
			maxRaw = c.SemanticRaw
		}
	}
	den := math.Max(epsilon, maxRaw-minRaw)
	for i := range pool {
		pool[i].SemanticNorm = (pool[i].SemanticRaw - minRaw) / den
	}
}

// normalizeKeyword rescales lexical scores by the pool maximum only. Lexical
// raw scores are non-negative and zero is a meaningful floor (no match), so
// unlike the semantic scale there is no min shift.
func normalizeKeyword(pool []Candidate) {
	if len(pool) == 0 {
		return
	}
	var maxRaw float64
	for _, c := range pool {
		if c.KeywordRaw > maxRaw {
			maxRaw = c.KeywordRaw
		}
	}
	den := math.Max(epsilon, maxRaw)
	for i := range pool {
		pool[i].KeywordNorm = pool[i].KeywordRaw / den
	}
}
