// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the pipeline's document tables as JSON Lines files
// and loads them back for indexing and ranking.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/news-engine/pkg/types"
)

// File names inside an index directory. The metadata table is row-aligned
// with the vector file; the manifest records how both were built.
const (
	MetaFile     = "meta.jsonl"
	ManifestFile = "manifest.yaml"
)

// maxLineBytes caps a single JSONL row. Feed summaries are short; anything
// past this is a corrupt file, not a document.
const maxLineBytes = 1 << 20

// WriteDocuments writes docs to path as JSON Lines. The write is atomic:
// a temp file in the target directory, renamed into place on success.
func WriteDocuments(path string, docs []types.Document) error {
	return writeJSONL(path, docs)
}

// ReadDocuments reads a JSON Lines file of documents in file order.
func ReadDocuments(path string) ([]types.Document, error) {
	return readJSONL[types.Document](path)
}

// WriteMeta writes the index-aligned metadata table to path.
func WriteMeta(path string, meta []types.DocumentMeta) error {
	return writeJSONL(path, meta)
}

// ReadMeta reads the index-aligned metadata table from path.
func ReadMeta(path string) ([]types.DocumentMeta, error) {
	return readJSONL[types.DocumentMeta](path)
}

// LatestRaw returns the lexically last *.jsonl capture under dir. Captures
// use dated names (YYYYMMDD.jsonl), so lexical order is chronological.
func LatestRaw(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return "", fmt.Errorf("listing captures in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no captures in %s: run ingest first", dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

func writeJSONL[T any](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	enc := json.NewEncoder(tmpFile)
	var encodeErr error
	for _, row := range rows {
		if encodeErr = enc.Encode(row); encodeErr != nil {
			break
		}
	}
	closeErr := tmpFile.Close()
	if encodeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding row: %w", encodeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func readJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var row T
		if err := json.Unmarshal([]byte(text), &row); err != nil {
			return nil, fmt.Errorf("parsing %s line %d: %w", path, line, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
