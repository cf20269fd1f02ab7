package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/news-engine/internal/embed"
	"github.com/pdiddy/news-engine/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Embed the latest capture into the vector index",
	Long: `Index reads the newest raw capture, embeds every document, and writes the
index artifacts: vectors.bin, meta.jsonl, and manifest.yaml. When the
manifest already matches the capture and model the build is skipped.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().Bool("force", false, "rebuild even when the index is current")
	indexCmd.Flags().String("raw-dir", "", "directory holding raw captures (default data/raw)")
	indexCmd.Flags().String("index-dir", "", "directory for index artifacts (default data/index)")
	indexCmd.Flags().String("model", "", "embedding model (default "+embed.DefaultModel+")")
	indexCmd.Flags().String("base-url", "", "embeddings API base URL (default: provider)")
	indexCmd.Flags().Int("batch-size", 0, "texts per embeddings request (default 32)")
	indexCmd.Flags().String("api-key", "", "embeddings API key (overrides config and secrets)")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	force, _ := cmd.Flags().GetBool("force")

	if v, _ := cmd.Flags().GetString("raw-dir"); v != "" {
		cfg.Index.RawDir = v
	}
	if v, _ := cmd.Flags().GetString("index-dir"); v != "" {
		cfg.Index.IndexDir = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.Embedding.Model = v
	}
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.Embedding.BaseURL = v
	}
	if v, _ := cmd.Flags().GetInt("batch-size"); v > 0 {
		cfg.Embedding.BatchSize = v
	}
	if v, _ := cmd.Flags().GetString("api-key"); v != "" {
		cfg.Embedding.APIKey = v
	}

	client, err := embed.NewClient(cfg.Embedding)
	if err != nil {
		return err
	}

	_, err = index.Build(cmd.Context(), client, client.Model(), cfg.Index, force, os.Stdout)
	return err
}
