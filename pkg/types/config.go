// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by the clients that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "herb-atlas/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the catalog collection endpoints.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the backend root; collection paths are appended under
	// /api/data/ (e.g. "https://example.edu").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxRetries bounds retries on HTTP 429/503 responses. Zero uses the
	// httputil default.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CacheConfig holds settings for the local SQLite collection cache.
type CacheConfig struct {
	// Path is the cache database file location.
	Path string `json:"path" yaml:"path"`

	// MaxAge is how old a cached payload may be before offline reads warn
	// about staleness (default 24h). The cache is never refreshed
	// implicitly; only the sync command writes it.
	MaxAge time.Duration `json:"max_age" yaml:"max_age"`
}

// ImagesConfig holds settings for the herb image downloader.
type ImagesConfig struct {
	HTTPConfig `yaml:",inline"`

	// Dir is the directory image files are written to.
	Dir string `json:"dir" yaml:"dir"`

	// DownloadDelay is the delay between consecutive downloads (default 0).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// AccountConfig holds settings for the auth endpoints.
type AccountConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the backend root; auth paths are appended under /api/auth/.
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// AppConfig groups all client configurations.
type AppConfig struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Images  ImagesConfig  `json:"images" yaml:"images"`
	Account AccountConfig `json:"account" yaml:"account"`
}
