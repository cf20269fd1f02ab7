// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import "strings"

// Lexical scoring weights and bonuses. Title evidence counts 3x summary
// evidence; the phrase and synonym bonuses follow the same title/summary split.
const (
	titleWeight   = 3.0
	summaryWeight = 1.0

	phraseTitleBonus   = 2.0
	phraseSummaryBonus = 0.7

	synonymTitleBonus   = 1.0
	synonymSummaryBonus = 0.3
)

// synonyms maps query tokens to domain terms that count as soft lexical
// evidence. Static lookup data, built once; never mutated at runtime.
var synonyms = map[string][]string{
	"cargo":    {"resupply", "supplies", "crs", "dragon", "station", "iss"},
	"station":  {"iss", "dragon", "crs", "resupply", "cargo", "international space station"},
	"resupply": {"crs", "dragon", "cargo", "iss", "station"},
	"crs":      {"resupply", "dragon", "cargo", "iss", "station"},
	"dragon":   {"crs", "resupply", "station", "iss", "cargo"},
	"iss":      {"station", "dragon", "crs", "resupply", "cargo"},
	"moon":     {"lunar", "artemis"},
	"lunar":    {"moon", "artemis"},
	"artemis":  {"moon", "lunar"},
}

// mustTerms are the cargo/station terms the must-have gate keys on.
var mustTerms = map[string]struct{}{
	"cargo": {}, "resupply": {}, "dragon": {}, "crs": {}, "station": {}, "iss": {},
}

// KeywordScore computes the lexical evidence for a document against a query:
// weighted term-frequency matches, an exact-phrase bonus, and per-token
// synonym bonuses. Non-negative, unbounded above; pool normalization happens
// later. An empty query (or one of only stopwords) scores 0.
func KeywordScore(query, title, summary string) float64 {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	titleHits, summaryHits := keywordHits(queryTokens, title, summary)
	score := titleWeight*float64(titleHits) + summaryWeight*float64(summaryHits)

	// Exact-phrase bonus: the normalized query as a plain substring of the
	// lowered text, not a word-boundary match.
	phrase := strings.Join(queryTokens, " ")
	lowTitle := strings.ToLower(title)
	lowSummary := strings.ToLower(summary)
	if strings.Contains(lowTitle, phrase) {
		score += phraseTitleBonus
	}
	if strings.Contains(lowSummary, phrase) {
		score += phraseSummaryBonus
	}

	// Synonym bonuses stack across tokens and synonyms; for one synonym a
	// title match short-circuits the summary check.
	for _, tok := range queryTokens {
		for _, syn := range synonyms[tok] {
			if containsWord(lowTitle, syn) {
				score += synonymTitleBonus
			} else if containsWord(lowSummary, syn) {
				score += synonymSummaryBonus
			}
		}
	}
	return score
}

// keywordHits counts query-token occurrences in the title and summary token
// streams. Repeated query tokens count each occurrence again.
func keywordHits(queryTokens []string, title, summary string) (int, int) {
	titleCounts := tokenCounts(Tokenize(title))
	summaryCounts := tokenCounts(Tokenize(summary))

	var titleHits, summaryHits int
	for _, t := range queryTokens {
		titleHits += titleCounts[t]
		summaryHits += summaryCounts[t]
	}
	return titleHits, summaryHits
}

func tokenCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// MustHaveGate reports whether a candidate passes the topical-completeness
// check: when the query mentions any must-term, the document must carry at
// least one must-term as a whole word in its title or summary. Queries
// without must-terms always pass.
func MustHaveGate(query, title, summary string) bool {
	queryHasMust := false
	for _, tok := range Tokenize(query) {
		if _, ok := mustTerms[tok]; ok {
			queryHasMust = true
			break
		}
	}
	if !queryHasMust {
		return true
	}
	for term := range mustTerms {
		if containsWord(title, term) || containsWord(summary, term) {
			return true
		}
	}
	return false
}
