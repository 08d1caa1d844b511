// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "libshelf/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for querying the book index.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchBase is the index search endpoint.
	SearchBase string `json:"search_base" yaml:"search_base"`

	// DownloadBase is the trusted mirror base; resolved download links are
	// composed by appending the download-page anchor target to it.
	DownloadBase string `json:"download_base" yaml:"download_base"`

	// AdsPrefix is the literal URL prefix identifying the trusted mirror's
	// download page among a record's mirror links.
	AdsPrefix string `json:"ads_prefix" yaml:"ads_prefix"`

	// MaxRetries is the retry budget for rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// AcquisitionConfig holds settings for downloading selected records.
type AcquisitionConfig struct {
	HTTPConfig `yaml:",inline"`

	// ChunkSize is the streaming write granularity in bytes (default 2000).
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// HistoryConfig holds settings for the acquisition history store.
type HistoryConfig struct {
	// Enabled controls whether acquisition attempts are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the history database.
	Dir string `json:"dir" yaml:"dir"`
}
