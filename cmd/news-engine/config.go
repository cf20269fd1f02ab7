// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/news-engine/internal/embed"
	"github.com/pdiddy/news-engine/pkg/types"
)

const defaultUserAgent = "news-engine/0.1"

func init() {
	viper.SetDefault("ingest.timeout", "30s")
	viper.SetDefault("ingest.max_per_feed", 100)
	viper.SetDefault("ingest.since_days", 30)
	viper.SetDefault("ingest.accept_languages", []string{"en"})
	viper.SetDefault("ingest.raw_dir", "data/raw")
	viper.SetDefault("embedding.timeout", "60s")
	viper.SetDefault("embedding.model", embed.DefaultModel)
	viper.SetDefault("embedding.batch_size", embed.DefaultBatchSize)
	viper.SetDefault("index.raw_dir", "data/raw")
	viper.SetDefault("index.index_dir", "data/index")
	viper.SetDefault("ranking.tau_days", 14.0)
	viper.SetDefault("ranking.pool_size", 50)
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8000)
}

// pipelineConfig assembles the full stage configuration from the config
// file, environment, and loaded secrets.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Ingest: types.IngestConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("ingest.timeout"),
				UserAgent: defaultUserAgent,
			},
			Feeds:           viper.GetStringSlice("ingest.feeds"),
			MaxPerFeed:      viper.GetInt("ingest.max_per_feed"),
			SinceDays:       viper.GetInt("ingest.since_days"),
			AcceptLanguages: viper.GetStringSlice("ingest.accept_languages"),
			RawDir:          viper.GetString("ingest.raw_dir"),
		},
		Embedding: types.EmbeddingConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("embedding.timeout"),
				UserAgent: defaultUserAgent,
			},
			Model:     viper.GetString("embedding.model"),
			BaseURL:   viper.GetString("embedding.base_url"),
			APIKey:    secretDefault("embedding-api-key", viper.GetString("embedding.api_key")),
			BatchSize: viper.GetInt("embedding.batch_size"),
		},
		Index: types.IndexConfig{
			RawDir:   viper.GetString("index.raw_dir"),
			IndexDir: viper.GetString("index.index_dir"),
		},
		Ranking: types.RankingConfig{
			TauDays:  viper.GetFloat64("ranking.tau_days"),
			PoolSize: viper.GetInt("ranking.pool_size"),
		},
		Server: types.ServerConfig{
			Host: viper.GetString("server.host"),
			Port: viper.GetInt("server.port"),
		},
	}
}
