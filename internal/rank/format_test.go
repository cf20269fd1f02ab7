// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/news-engine/pkg/types"
)

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, "cargo", &buf)
	if got := buf.String(); got != "No results found.\n" {
		t.Errorf("FormatTable(nil) = %q", got)
	}
}

func TestFormatTable(t *testing.T) {
	results := []types.ScoredResult{
		{
			Title:       "Dragon delivers cargo",
			URL:         "https://example.com/a",
			PublishedAt: "2026-03-14T09:30:00Z",
			Final:       0.986,
			Semantic:    1,
			Keyword:     1,
			Recency:     0.931,
		},
		{
			Title: "No date story",
			URL:   "https://example.com/b",
		},
	}

	var buf bytes.Buffer
	FormatTable(results, "cargo", &buf)
	out := buf.String()

	for _, want := range []string{
		`Top 2 results for: "cargo"`,
		"[1] 2026-03-14  (final=0.986 | sem=1.000 | kw=1.000 | rec=0.931)",
		"Dragon delivers cargo",
		"https://example.com/a",
		"[2]",
		"No date story",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Timestamps truncate to the date; the full stamp never appears.
	if strings.Contains(out, "09:30") {
		t.Errorf("output leaks the time component:\n%s", out)
	}
}

func TestFormatJSONNilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(nil, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("FormatJSON(nil) = %q, want empty array", got)
	}
}

func TestFormatJSONRoundTrip(t *testing.T) {
	in := []types.ScoredResult{{Title: "Dragon delivers cargo", Final: 0.5, SemanticRaw: 0.9}}

	var buf bytes.Buffer
	if err := FormatJSON(in, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var out []types.ScoredResult
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].Title != in[0].Title || out[0].Final != in[0].Final {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
