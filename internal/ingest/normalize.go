// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/news-engine/pkg/types"
)

// normalizeItem converts one feed item into a Document. It reports false when
// the item lacks the title or link every downstream stage depends on. Items
// without a usable timestamp get the fetch time, so recency scoring treats
// them as fresh rather than unknown.
func normalizeItem(it *gofeed.Item, feedURL string, now time.Time) (types.Document, bool) {
	title := strings.TrimSpace(it.Title)
	link := strings.TrimSpace(it.Link)
	if title == "" || link == "" {
		return types.Document{}, false
	}

	summary := it.Description
	if strings.TrimSpace(summary) == "" {
		summary = it.Content
	}
	summary = stripMarkup(summary)

	published := now
	switch {
	case it.PublishedParsed != nil:
		published = *it.PublishedParsed
	case it.UpdatedParsed != nil:
		published = *it.UpdatedParsed
	}

	return types.Document{
		ID:          docID(link, title),
		Type:        "news",
		Title:       title,
		Summary:     summary,
		PublishedAt: published.UTC().Format(time.RFC3339),
		URL:         link,
		Source:      feedURL,
		Topics:      []string{},
	}, true
}

// docID derives a stable identifier from the item URL, falling back to the
// title when the URL is empty.
func docID(url, title string) string {
	key := url
	if key == "" {
		key = title
	}
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

// stripMarkup reduces an HTML fragment to its visible text with whitespace
// collapsed. On a parse failure the raw string is collapsed instead.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
