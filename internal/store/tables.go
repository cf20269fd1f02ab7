// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"path/filepath"

	"github.com/pdiddy/news-engine/pkg/types"
)

// Tables is the read side of an index directory: the metadata table plus,
// when the manifest's source capture is still present, the raw documents
// the vectors were built from. Positional ids address both slices.
type Tables struct {
	Manifest types.IndexManifest

	meta []types.DocumentMeta
	text []types.DocumentText
}

// LoadTables reads the metadata table and manifest from indexDir and
// resolves the manifest's source capture under rawDir for summary text.
// A missing or out-of-step capture leaves the text table empty: lexical
// scoring then sees titles only, which degrades ranking but never fails it.
func LoadTables(indexDir, rawDir string) (*Tables, error) {
	manifest, err := ReadManifest(filepath.Join(indexDir, ManifestFile))
	if err != nil {
		return nil, err
	}

	meta, err := ReadMeta(filepath.Join(indexDir, MetaFile))
	if err != nil {
		return nil, err
	}
	if len(meta) != manifest.Count {
		return nil, fmt.Errorf("metadata table has %d rows, manifest says %d: rebuild the index",
			len(meta), manifest.Count)
	}

	t := &Tables{Manifest: manifest, meta: meta}

	if manifest.SourceFile != "" {
		docs, err := ReadDocuments(filepath.Join(rawDir, manifest.SourceFile))
		if err == nil && len(docs) == len(meta) {
			t.text = make([]types.DocumentText, len(docs))
			for i, d := range docs {
				t.text[i] = types.DocumentText{Title: d.Title, Summary: d.Summary}
			}
		}
	}

	return t, nil
}

// Len returns the number of metadata rows.
func (t *Tables) Len() int { return len(t.meta) }

// Meta returns the metadata row for id; ok is false when id is out of range.
func (t *Tables) Meta(id int) (types.DocumentMeta, bool) {
	if id < 0 || id >= len(t.meta) {
		return types.DocumentMeta{}, false
	}
	return t.meta[id], true
}

// Text returns the raw text for id, or the zero value when the source
// capture is unavailable.
func (t *Tables) Text(id int) types.DocumentText {
	if id < 0 || id >= len(t.text) {
		return types.DocumentText{}
	}
	return t.text[id]
}
