// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/news-engine/internal/embed"
	"github.com/pdiddy/news-engine/internal/rank"
	"github.com/pdiddy/news-engine/internal/store"
	"github.com/pdiddy/news-engine/pkg/types"
)

// Summary holds counts from an index build.
type Summary struct {
	Documents  int
	Dimensions int
	SourceFile string
	Skipped    bool
}

// Build embeds the latest raw capture and writes the index artifacts
// (vectors, metadata table, manifest) to cfg.IndexDir. When the existing
// manifest already covers the same capture with the same model, the build
// is skipped unless force is set. Progress goes to w.
func Build(ctx context.Context, embedder embed.Embedder, model string, cfg types.IndexConfig, force bool, w io.Writer) (Summary, error) {
	rawPath, err := store.LatestRaw(cfg.RawDir)
	if err != nil {
		return Summary{}, err
	}
	sourceFile := filepath.Base(rawPath)

	docs, err := store.ReadDocuments(rawPath)
	if err != nil {
		return Summary{}, err
	}
	if len(docs) == 0 {
		return Summary{}, fmt.Errorf("no documents in %s", rawPath)
	}

	manifestPath := filepath.Join(cfg.IndexDir, store.ManifestFile)
	if !force {
		if m, err := store.ReadManifest(manifestPath); err == nil &&
			m.SourceFile == sourceFile && m.Model == model && m.Count == len(docs) {
			fmt.Fprintf(w, "index up to date (%d vectors from %s); use --force to rebuild\n",
				m.Count, sourceFile)
			return Summary{
				Documents:  m.Count,
				Dimensions: m.Dimensions,
				SourceFile: sourceFile,
				Skipped:    true,
			}, nil
		}
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = embeddingText(d)
	}

	fmt.Fprintf(w, "embedding %d documents from %s with %s\n", len(docs), sourceFile, model)
	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return Summary{}, fmt.Errorf("embedding documents: %w", err)
	}
	if len(vectors) != len(docs) {
		return Summary{}, fmt.Errorf("embedded %d vectors for %d documents", len(vectors), len(docs))
	}
	dims := len(vectors[0])

	if err := WriteVectors(filepath.Join(cfg.IndexDir, VectorsFile), vectors); err != nil {
		return Summary{}, err
	}

	meta := make([]types.DocumentMeta, len(docs))
	for i, d := range docs {
		meta[i] = types.DocumentMeta{
			Title:       d.Title,
			URL:         d.URL,
			PublishedAt: normalizeStamp(d.PublishedAt),
			Source:      d.Source,
		}
	}
	if err := store.WriteMeta(filepath.Join(cfg.IndexDir, store.MetaFile), meta); err != nil {
		return Summary{}, err
	}

	manifest := types.IndexManifest{
		Model:      model,
		SourceFile: sourceFile,
		Dimensions: dims,
		Count:      len(docs),
		BuiltAt:    time.Now().UTC(),
	}
	if err := store.WriteManifest(manifestPath, manifest); err != nil {
		return Summary{}, err
	}

	fmt.Fprintf(w, "wrote %d vectors (%d dims) to %s\n", len(docs), dims, cfg.IndexDir)
	return Summary{Documents: len(docs), Dimensions: dims, SourceFile: sourceFile}, nil
}

// embeddingText is the document text sent to the embedding model: headline
// plus summary, the same fields lexical scoring sees.
func embeddingText(d types.Document) string {
	if strings.TrimSpace(d.Summary) == "" {
		return d.Title
	}
	return d.Title + "\n\n" + d.Summary
}

// normalizeStamp re-parses a document timestamp with the same layouts the
// scorer accepts, so the metadata table carries either RFC 3339 UTC or
// nothing. Build-time and query-time parsing must agree.
func normalizeStamp(s string) string {
	t, ok := rank.ParseWhen(s)
	if !ok {
		return ""
	}
	return t.Format(time.RFC3339)
}
