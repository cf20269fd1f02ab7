package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/news-engine/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Pull news feeds into a dated raw capture",
	Long: `Ingest polls the configured RSS/Atom feeds, normalizes and deduplicates
the items, and writes them to a dated JSONL capture under the raw data
directory. Individual feed failures are reported and skipped.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringSlice("feeds", nil, "feed URL (repeatable; overrides configured feeds)")
	ingestCmd.Flags().Int("since-days", 0, "drop items older than this many days (default 30)")
	ingestCmd.Flags().Int("max-per-feed", 0, "cap on items taken per feed (default 100)")
	ingestCmd.Flags().String("raw-dir", "", "directory for dated raw captures (default data/raw)")
	ingestCmd.Flags().Duration("timeout", 0, "HTTP timeout per feed request (default 30s)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig().Ingest

	if feeds, _ := cmd.Flags().GetStringSlice("feeds"); len(feeds) > 0 {
		cfg.Feeds = feeds
	}
	if v, _ := cmd.Flags().GetInt("since-days"); v > 0 {
		cfg.SinceDays = v
	}
	if v, _ := cmd.Flags().GetInt("max-per-feed"); v > 0 {
		cfg.MaxPerFeed = v
	}
	if v, _ := cmd.Flags().GetString("raw-dir"); v != "" {
		cfg.RawDir = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}

	client := &http.Client{Timeout: cfg.Timeout}
	result, err := ingest.Run(cmd.Context(), client, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d feed(s) failed", result.FeedErrors)
	}
	return nil
}
