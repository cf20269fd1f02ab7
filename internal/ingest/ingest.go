// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest polls RSS and Atom feeds and captures the normalized items
// as a dated JSON Lines file under the raw data directory.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/news-engine/internal/httputil"
	"github.com/pdiddy/news-engine/internal/store"
	"github.com/pdiddy/news-engine/pkg/types"
)

// DefaultFeeds are polled when the configuration names no feeds.
var DefaultFeeds = []string{
	"https://www.jpl.nasa.gov/feeds/news/",
	"https://earthobservatory.nasa.gov/feeds/rss/all.rss",
	"https://www.nasa.gov/news-release/feed/",
}

const (
	defaultMaxPerFeed = 100
	defaultRawDir     = "data/raw"
)

// Result summarizes one ingest run.
type Result struct {
	// Items is the number of documents written to the capture.
	Items int
	// Dropped counts items discarded during normalization or filtering,
	// including items collapsed into an earlier duplicate.
	Dropped int
	// FeedErrors counts feeds that could not be fetched or parsed.
	FeedErrors int
	// Path is the capture file, empty when nothing was written.
	Path string
}

// Total returns the number of feed items considered.
func (r Result) Total() int {
	return r.Items + r.Dropped
}

// HasFailures reports whether any feed failed outright.
func (r Result) HasFailures() bool {
	return r.FeedErrors > 0
}

// Run polls every configured feed, normalizes and deduplicates the items,
// and writes the surviving documents to a dated JSONL capture under the raw
// directory. Individual feed failures are reported on w and skipped; Run
// returns an error only when every feed fails or the capture cannot be
// written. Duplicate URLs keep their first-seen position with the
// last-fetched content.
func Run(ctx context.Context, client *http.Client, cfg types.IngestConfig, w io.Writer) (Result, error) {
	feeds := cfg.Feeds
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	maxPerFeed := cfg.MaxPerFeed
	if maxPerFeed <= 0 {
		maxPerFeed = defaultMaxPerFeed
	}
	rawDir := cfg.RawDir
	if rawDir == "" {
		rawDir = defaultRawDir
	}
	accept := cfg.AcceptLanguages
	if len(accept) == 0 {
		accept = []string{"en"}
	}

	now := time.Now().UTC()
	var cutoff time.Time
	if cfg.SinceDays > 0 {
		cutoff = now.AddDate(0, 0, -cfg.SinceDays)
	}

	var result Result
	var docs []types.Document
	byURL := make(map[string]int)

	for _, feedURL := range feeds {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fmt.Fprintf(w, "fetching: %s\n", feedURL)
		feed, err := fetchFeed(ctx, client, feedURL, cfg)
		if err != nil {
			fmt.Fprintf(w, "  warning: %v\n", err)
			result.FeedErrors++
			continue
		}

		if !acceptLanguage(feed.Language, accept) {
			fmt.Fprintf(w, "  skipped: feed language %q\n", feed.Language)
			continue
		}

		before := len(docs)
		taken := 0
		for _, it := range feed.Items {
			if taken >= maxPerFeed {
				break
			}
			taken++

			doc, ok := normalizeItem(it, feedURL, now)
			if !ok {
				result.Dropped++
				continue
			}
			if !cutoff.IsZero() {
				if t, perr := time.Parse(time.RFC3339, doc.PublishedAt); perr == nil && t.Before(cutoff) {
					result.Dropped++
					continue
				}
			}
			if pos, seen := byURL[doc.URL]; seen {
				docs[pos] = doc
				result.Dropped++
				continue
			}
			byURL[doc.URL] = len(docs)
			docs = append(docs, doc)
		}
		fmt.Fprintf(w, "  %d items, %d kept\n", taken, len(docs)-before)
	}

	if result.FeedErrors == len(feeds) {
		return result, fmt.Errorf("all %d feeds failed", len(feeds))
	}
	result.Items = len(docs)

	if len(docs) > 0 {
		path := filepath.Join(rawDir, now.Format("20060102")+".jsonl")
		if err := store.WriteDocuments(path, docs); err != nil {
			return result, fmt.Errorf("writing capture: %w", err)
		}
		result.Path = path
		fmt.Fprintf(w, "wrote: %s\n", path)
	}

	fmt.Fprintf(w, "\nIngest summary: %d documents, %d dropped, %d feed errors (total: %d)\n",
		result.Items, result.Dropped, result.FeedErrors, result.Total())
	return result, nil
}

// fetchFeed retrieves and parses one feed, retrying transient HTTP failures.
func fetchFeed(ctx context.Context, client *http.Client, url string, cfg types.IngestConfig) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return feed, nil
}

// acceptLanguage reports whether a feed language matches one of the accepted
// prefixes, so "en" admits "en-US". Feeds that declare no language pass.
func acceptLanguage(lang string, accepted []string) bool {
	if lang == "" {
		return true
	}
	lang = strings.ToLower(lang)
	for _, prefix := range accepted {
		if strings.HasPrefix(lang, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}
