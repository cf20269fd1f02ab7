// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "news-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// IngestConfig holds settings for the feed ingestion stage.
type IngestConfig struct {
	HTTPConfig `yaml:",inline"`

	// Feeds lists the RSS/Atom feed URLs to pull.
	Feeds []string `json:"feeds" yaml:"feeds"`

	// MaxPerFeed caps the number of items taken from each feed (default 100).
	MaxPerFeed int `json:"max_per_feed" yaml:"max_per_feed"`

	// SinceDays drops items older than this many days (default 30; 0 keeps all).
	SinceDays int `json:"since_days" yaml:"since_days"`

	// AcceptLanguages lists accepted feed language prefixes (default ["en"]).
	// Feeds that declare no language are accepted.
	AcceptLanguages []string `json:"accept_languages" yaml:"accept_languages"`

	// RawDir is the directory for dated raw JSONL files (default "data/raw").
	RawDir string `json:"raw_dir" yaml:"raw_dir"`
}

// EmbeddingConfig holds settings for the embedding client. The endpoint is
// any OpenAI-compatible embeddings API, local or hosted.
type EmbeddingConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the embedding model identifier (e.g. "BAAI/bge-small-en-v1.5").
	Model string `json:"model" yaml:"model"`

	// BaseURL overrides the API base URL (e.g. "http://localhost:8080/v1").
	// Empty uses the provider default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey is the authentication key for the embeddings API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BatchSize is the number of texts embedded per request (default 32).
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// IndexConfig holds settings for the index build stage.
type IndexConfig struct {
	// RawDir is the directory holding dated raw JSONL files (default "data/raw").
	RawDir string `json:"raw_dir" yaml:"raw_dir"`

	// IndexDir is the directory for index artifacts: vectors.bin, meta.jsonl,
	// and manifest.yaml (default "data/index").
	IndexDir string `json:"index_dir" yaml:"index_dir"`
}

// RankingConfig holds tunables for the hybrid ranking engine. The blend
// weights are fixed; only the decay constant and pool bound are configurable.
type RankingConfig struct {
	// TauDays is the recency decay constant in days (default 14).
	TauDays float64 `json:"tau_days" yaml:"tau_days"`

	// PoolSize bounds the candidate pool taken from the retriever per query
	// (default 50). The effective pool is min(PoolSize, corpus size).
	PoolSize int `json:"pool_size" yaml:"pool_size"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Host is the listen address (default "127.0.0.1").
	Host string `json:"host" yaml:"host"`

	// Port is the listen port (default 8000).
	Port int `json:"port" yaml:"port"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Ingest    IngestConfig    `json:"ingest" yaml:"ingest"`
	Embedding EmbeddingConfig `json:"embedding" yaml:"embedding"`
	Index     IndexConfig     `json:"index" yaml:"index"`
	Ranking   RankingConfig   `json:"ranking" yaml:"ranking"`
	Server    ServerConfig    `json:"server" yaml:"server"`
}
