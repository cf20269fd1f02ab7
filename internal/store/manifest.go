// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/news-engine/pkg/types"
)

// WriteManifest records how an index was built.
func WriteManifest(path string, m types.IndexManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads an index manifest from path.
func ReadManifest(path string) (types.IndexManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.IndexManifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var m types.IndexManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return types.IndexManifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
