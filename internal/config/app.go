// Package config collects the environment-driven configuration of the API
// server. Worker configuration lives in internal/infra/worker.
package config

import (
	"time"

	"github.com/joho/godotenv"

	"videonews-feed/pkg/config"
)

// AppConfig holds the API server configuration.
type AppConfig struct {
	// Addr is the HTTP listen address.
	Addr string

	// Version is reported by the health endpoint.
	Version string

	// YouTubeAPIKey authenticates against the YouTube Data API. Empty or
	// "demo-key" switches the YouTube fetcher to synthetic demo data.
	YouTubeAPIKey string

	// YouTubeMaxResults caps records per YouTube source per fetch.
	YouTubeMaxResults int

	// RSSMaxResults caps records per RSS source per fetch.
	RSSMaxResults int

	// FetchTimeout bounds a single upstream fetch.
	FetchTimeout time.Duration

	// SourcesFile optionally overrides the embedded source registry seed
	// with a YAML file on disk.
	SourcesFile string

	// MaxBodyBytes limits incoming request bodies.
	MaxBodyBytes int64

	// RateLimitRequests and RateLimitWindow configure the per-IP limiter
	// on the feed endpoint.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads the API server configuration from the environment.
//
// Environment variables:
//   - ADDR: listen address (default ":8080")
//   - APP_VERSION: reported version string (default "dev")
//   - YOUTUBE_API_KEY: YouTube Data API key (default "" -> demo data)
//   - YOUTUBE_MAX_RESULTS: per-source cap (default 25)
//   - RSS_MAX_RESULTS: per-source cap (default 15)
//   - FETCH_TIMEOUT: upstream fetch budget (default 10s)
//   - SOURCES_FILE: path to a YAML seed overriding the embedded one
//   - MAX_BODY_BYTES: request body limit (default 1 MiB)
//   - RATELIMIT_REQUESTS / RATELIMIT_WINDOW: feed rate limit
//     (default 100 per minute)
func Load() AppConfig {
	// A missing .env file is not an error; the environment wins either way.
	_ = godotenv.Load()

	return AppConfig{
		Addr:              config.GetEnvString("ADDR", ":8080"),
		Version:           config.GetEnvString("APP_VERSION", "dev"),
		YouTubeAPIKey:     config.GetEnvString("YOUTUBE_API_KEY", ""),
		YouTubeMaxResults: config.GetEnvInt("YOUTUBE_MAX_RESULTS", 25),
		RSSMaxResults:     config.GetEnvInt("RSS_MAX_RESULTS", 15),
		FetchTimeout:      config.GetEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		SourcesFile:       config.GetEnvString("SOURCES_FILE", ""),
		MaxBodyBytes:      int64(config.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		RateLimitRequests: config.GetEnvInt("RATELIMIT_REQUESTS", 100),
		RateLimitWindow:   config.GetEnvDuration("RATELIMIT_WINDOW", time.Minute),
	}
}
