// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog fetches the herb and formula collections from the
// backend and merges them into unified in-memory catalogs. Collections
// are origin buckets: one per exam-body partition plus the extra curated
// set. All fetching is fail-closed; a page either gets the whole catalog
// or an error, never partial data.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/pdiddy/herb-atlas/internal/httputil"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

// dataPrefix is the path under which the backend serves collections.
const dataPrefix = "/api/data/"

// Client fetches collection payloads from the backend.
type Client struct {
	http *http.Client
	cfg  types.CatalogConfig
}

// NewClient builds a catalog client from config.
func NewClient(cfg types.CatalogConfig) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// fetchBytes retrieves one collection body.
func (c *Client) fetchBytes(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+dataPrefix+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return body, nil
}

// Raw maps collection paths to unparsed JSON payloads. It is what the
// sync command hands to the cache and what Build consumes.
type Raw map[string][]byte

// FetchAll retrieves every data collection concurrently. Any failure
// fails the whole fetch.
func (c *Client) FetchAll(ctx context.Context) (Raw, error) {
	paths := CollectionPaths()

	bodies := make([][]byte, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			bodies[i], errs[i] = c.fetchBytes(ctx, path)
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	raw := make(Raw, len(paths))
	for i, path := range paths {
		raw[path] = bodies[i]
	}
	return raw, nil
}

// Load fetches every collection and builds the merged catalog.
func (c *Client) Load(ctx context.Context) (*Catalog, error) {
	raw, err := c.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return Build(raw)
}

// FetchCategoryList retrieves the herb category navigation tree.
func (c *Client) FetchCategoryList(ctx context.Context) (*CategoryList, error) {
	body, err := c.fetchBytes(ctx, pathHerbCategoryList)
	if err != nil {
		return nil, err
	}
	var list CategoryList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pathHerbCategoryList, err)
	}
	return &list, nil
}

// FetchGroupList retrieves the flat herb-group reference list.
func (c *Client) FetchGroupList(ctx context.Context) (*GroupList, error) {
	body, err := c.fetchBytes(ctx, pathHerbGroupsList)
	if err != nil {
		return nil, err
	}
	var list GroupList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pathHerbGroupsList, err)
	}
	return &list, nil
}
