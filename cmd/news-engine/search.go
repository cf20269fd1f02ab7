package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/news-engine/internal/embed"
	"github.com/pdiddy/news-engine/internal/index"
	"github.com/pdiddy/news-engine/internal/rank"
	"github.com/pdiddy/news-engine/internal/store"
	"github.com/pdiddy/news-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Rank indexed documents against a query",
	Long: `Search ranks the corpus against a free-text query. Hybrid mode blends
semantic similarity, keyword overlap, and recency; semantic mode returns raw
vector similarity; local mode scores the latest raw capture with keywords and
recency only, without touching the index or the embeddings API.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "free-text query (or pass it as arguments)")
	searchCmd.Flags().Int("k", 8, "number of results to return")
	searchCmd.Flags().String("mode", "hybrid", "ranking mode: hybrid, semantic, or local")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("raw-dir", "", "directory holding raw captures (default data/raw)")
	searchCmd.Flags().String("index-dir", "", "directory holding index artifacts (default data/index)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		query = strings.Join(args, " ")
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("provide a query via --query or as arguments")
	}

	k, _ := cmd.Flags().GetInt("k")
	mode, _ := cmd.Flags().GetString("mode")
	cfg := pipelineConfig()
	if v, _ := cmd.Flags().GetString("raw-dir"); v != "" {
		cfg.Ingest.RawDir = v
		cfg.Index.RawDir = v
	}
	if v, _ := cmd.Flags().GetString("index-dir"); v != "" {
		cfg.Index.IndexDir = v
	}

	var results []types.ScoredResult
	switch mode {
	case "hybrid", "semantic":
		engine, err := loadEngine(cfg, false)
		if err != nil {
			return err
		}
		if mode == "semantic" {
			results, err = engine.Semantic(cmd.Context(), query, k)
		} else {
			results, err = engine.Rank(cmd.Context(), query, k)
		}
		if err != nil {
			return err
		}
	case "local":
		path, err := store.LatestRaw(cfg.Ingest.RawDir)
		if err != nil {
			return err
		}
		docs, err := store.ReadDocuments(path)
		if err != nil {
			return err
		}
		results = rank.Local(docs, query, k, time.Now().UTC(), cfg.Ranking.TauDays)
	default:
		return fmt.Errorf("unknown mode %q: use hybrid, semantic, or local", mode)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return rank.FormatJSON(results, os.Stdout)
	}
	rank.FormatTable(results, query, os.Stdout)
	return nil
}

// --- shared helpers ---

// loadEngine wires the index artifacts and an embeddings client into a
// ranking engine. Queries embed with the model recorded in the manifest so
// they always match the stored vectors, even after a config change.
func loadEngine(cfg types.PipelineConfig, withBreaker bool) (*rank.Engine, error) {
	flat, err := index.LoadFlat(cfg.Index.IndexDir)
	if err != nil {
		return nil, err
	}
	tables, err := store.LoadTables(cfg.Index.IndexDir, cfg.Index.RawDir)
	if err != nil {
		return nil, err
	}

	emb := cfg.Embedding
	if tables.Manifest.Model != "" {
		emb.Model = tables.Manifest.Model
	}
	client, err := embed.NewClient(emb)
	if err != nil {
		return nil, err
	}

	var embedder embed.Embedder = client
	if withBreaker {
		embedder = embed.NewBreaker(client, "embeddings")
	}

	return rank.New(index.NewRetriever(embedder, flat), tables, cfg.Ranking), nil
}
