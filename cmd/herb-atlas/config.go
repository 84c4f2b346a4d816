// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/herb-atlas/internal/catalog"
	"github.com/pdiddy/herb-atlas/internal/store"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

// appConfig assembles the typed configuration from viper, with defaults
// for everything so a bare invocation works against a local backend.
func appConfig() types.AppConfig {
	viper.SetDefault("catalog.base_url", "http://localhost:4000")
	viper.SetDefault("catalog.timeout", 30*time.Second)
	viper.SetDefault("catalog.user_agent", "herb-atlas/"+version)
	viper.SetDefault("catalog.max_retries", 3)
	viper.SetDefault("cache.path", defaultCachePath())
	viper.SetDefault("cache.max_age", 24*time.Hour)
	viper.SetDefault("images.dir", "images")
	viper.SetDefault("images.timeout", 60*time.Second)
	viper.SetDefault("images.download_delay", time.Duration(0))
	viper.SetDefault("account.base_url", viper.GetString("catalog.base_url"))
	viper.SetDefault("account.timeout", 30*time.Second)

	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("catalog.timeout"),
		UserAgent: viper.GetString("catalog.user_agent"),
	}

	return types.AppConfig{
		Catalog: types.CatalogConfig{
			HTTPConfig: httpCfg,
			BaseURL:    viper.GetString("catalog.base_url"),
			MaxRetries: viper.GetInt("catalog.max_retries"),
		},
		Cache: types.CacheConfig{
			Path:   viper.GetString("cache.path"),
			MaxAge: viper.GetDuration("cache.max_age"),
		},
		Images: types.ImagesConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("images.timeout"),
				UserAgent: httpCfg.UserAgent,
			},
			Dir:           viper.GetString("images.dir"),
			DownloadDelay: viper.GetDuration("images.download_delay"),
		},
		Account: types.AccountConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("account.timeout"),
				UserAgent: httpCfg.UserAgent,
			},
			BaseURL: viper.GetString("account.base_url"),
		},
	}
}

func defaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "herb-atlas.db"
	}
	return filepath.Join(base, "herb-atlas", "catalog.db")
}

// loadCatalog returns the merged catalog: from the backend, or from the
// local sync cache when offline is set. Offline reads past the cache
// max-age only warn; the sync command is the sole writer.
func loadCatalog(ctx context.Context, cfg types.AppConfig, offline bool) (*catalog.Catalog, error) {
	if !offline {
		return catalog.NewClient(cfg.Catalog).Load(ctx)
	}

	s, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	raw, oldest, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("the local cache is empty; run 'herb-atlas sync' first")
	}
	if cfg.Cache.MaxAge > 0 && time.Since(oldest) > cfg.Cache.MaxAge {
		fmt.Fprintf(os.Stderr, "warning: cache is %s old; run 'herb-atlas sync' to refresh\n",
			time.Since(oldest).Round(time.Hour))
	}
	return catalog.Build(raw)
}
