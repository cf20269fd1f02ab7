// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"testing"

	"github.com/pdiddy/news-engine/pkg/types"
)

func TestLocalEmptyInputs(t *testing.T) {
	docs := []types.Document{{Title: "A"}}

	if got := Local(nil, "cargo", 5, testNow, 14); got != nil {
		t.Errorf("Local(nil docs) = %v, want nil", got)
	}
	if got := Local(docs, "cargo", 0, testNow, 14); got != nil {
		t.Errorf("Local(k=0) = %v, want nil", got)
	}
	if got := Local(docs, "cargo", -1, testNow, 14); got != nil {
		t.Errorf("Local(k=-1) = %v, want nil", got)
	}
}

func TestLocalRanksByKeywordAndRecency(t *testing.T) {
	docs := []types.Document{
		{
			Title:   "Weather satellite update",
			Summary: "Forecast instruments in orbit.",
			URL:     "https://example.com/b",
		},
		{
			Title:       "Dragon launches cargo mission",
			Summary:     "The capsule lifts resupply supplies to orbit.",
			URL:         "https://example.com/a",
			PublishedAt: stampDaysAgo(2),
		},
	}

	results := Local(docs, "cargo dragon", 5, testNow, 14)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].URL != "https://example.com/a" {
		t.Fatalf("top result = %q, want the cargo/dragon document", results[0].URL)
	}

	// Pool max keyword normalizes to 1; two days of decay on top.
	want := localKeywordWeight + localRecencyWeight*math.Exp(-2.0/14)
	if !almostEqual(results[0].Final, want) {
		t.Errorf("top final = %f, want %f", results[0].Final, want)
	}
	if results[1].Final != 0 {
		t.Errorf("unmatched document final = %f, want 0", results[1].Final)
	}
}

func TestLocalAppliesNoGate(t *testing.T) {
	// "cargo" is a must-term in hybrid mode, but local mode never penalizes:
	// a document matching only the non-must token keeps its full blend.
	docs := []types.Document{{Title: "Launch schedule published"}}

	results := Local(docs, "cargo schedule", 1, testNow, 14)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if !almostEqual(results[0].Final, localKeywordWeight) {
		t.Errorf("final = %f, want %f (no penalty in local mode)",
			results[0].Final, localKeywordWeight)
	}
}

func TestLocalStableOnTies(t *testing.T) {
	docs := []types.Document{
		{Title: "Same headline", URL: "https://example.com/first"},
		{Title: "Same headline", URL: "https://example.com/second"},
	}

	results := Local(docs, "headline", 2, testNow, 14)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Final != results[1].Final {
		t.Fatalf("finals differ: %f vs %f", results[0].Final, results[1].Final)
	}
	if results[0].URL != "https://example.com/first" {
		t.Errorf("tie broken against input order: first = %q", results[0].URL)
	}
}

func TestLocalTruncatesToK(t *testing.T) {
	docs := []types.Document{
		{Title: "Cargo run one"},
		{Title: "Cargo run two"},
		{Title: "Cargo run three"},
	}

	results := Local(docs, "cargo", 2, testNow, 14)
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}
