// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the news-engine pipeline:
// ingested documents, index artifacts, retrieval hits, and ranked results.
package types

import "time"

// Document is a normalized news item as written to the raw JSONL corpus.
// Immutable once ingested.
type Document struct {
	// ID is the SHA-1 hex digest of the item URL (or title when the URL is
	// absent), stable across re-ingests of the same item.
	ID string `json:"id" yaml:"id"`

	// Type is the record kind; always "news" for feed items.
	Type string `json:"type" yaml:"type"`

	// Title is the trimmed item headline.
	Title string `json:"title" yaml:"title"`

	// Summary is the item description with markup stripped.
	Summary string `json:"summary" yaml:"summary"`

	// PublishedAt is the publication time in RFC 3339 UTC. Ingestion stamps
	// the fetch time when the feed supplies no timestamp.
	PublishedAt string `json:"published_at" yaml:"published_at"`

	// URL is the canonical article link.
	URL string `json:"url" yaml:"url"`

	// Source is the URL of the feed the item came from.
	Source string `json:"source" yaml:"source"`

	// Topics holds optional topic labels. Empty for feed items today.
	Topics []string `json:"topics" yaml:"topics"`
}

// DocumentMeta is one row of the index-side metadata table, aligned 1:1
// with the vector ordering of the index it was built with.
type DocumentMeta struct {
	// Title is the document headline.
	Title string `json:"title" yaml:"title"`

	// URL is the canonical article link.
	URL string `json:"url" yaml:"url"`

	// PublishedAt is the publication time in RFC 3339 UTC, or empty when
	// unknown or unparseable at build time.
	PublishedAt string `json:"published_at" yaml:"published_at"`

	// Source is the URL of the feed the document came from.
	Source string `json:"source" yaml:"source"`
}

// DocumentText carries the raw text fields used for lexical scoring.
type DocumentText struct {
	// Title is the document headline.
	Title string `json:"title" yaml:"title"`

	// Summary is the document body text.
	Summary string `json:"summary" yaml:"summary"`
}

// IndexManifest describes a built vector index: which model produced the
// vectors, which raw file they came from, and their shape.
type IndexManifest struct {
	// Model is the embedding model identifier the vectors were built with.
	// Queries must be embedded with the same model.
	Model string `json:"model" yaml:"model"`

	// SourceFile is the raw JSONL file name (relative to the raw directory)
	// whose documents the vectors encode, in file order.
	SourceFile string `json:"source_file" yaml:"source_file"`

	// Dimensions is the vector width.
	Dimensions int `json:"dimensions" yaml:"dimensions"`

	// Count is the number of vectors (and metadata rows).
	Count int `json:"count" yaml:"count"`

	// BuiltAt records when the index was built.
	BuiltAt time.Time `json:"built_at" yaml:"built_at"`
}
