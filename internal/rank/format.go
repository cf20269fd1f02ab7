// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/news-engine/pkg/types"
)

// FormatTable writes ranked results in the CLI's breakdown layout: one
// numbered entry per result with its date, component scores, title, and URL.
func FormatTable(results []types.ScoredResult, query string, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "Top %d results for: %q\n\n", len(results), query)
	for i, r := range results {
		date := r.PublishedAt
		if len(date) > 10 {
			date = date[:10]
		}
		fmt.Fprintf(w, "[%d] %s  (final=%.3f | sem=%.3f | kw=%.3f | rec=%.3f)\n",
			i+1, date, r.Final, r.Semantic, r.Keyword, r.Recency)
		fmt.Fprintf(w, "     %s\n", r.Title)
		fmt.Fprintf(w, "     %s\n", r.URL)
	}
}

// FormatJSON writes results as indented JSON. A nil slice encodes as an
// empty array so consumers always see a list.
func FormatJSON(results []types.ScoredResult, w io.Writer) error {
	if results == nil {
		results = []types.ScoredResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
