// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images downloads the herb illustration assets referenced by
// catalog records. Unlike collection loading, image fetching degrades per
// file: a failed download is reported and counted, not fatal.
package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/herb-atlas/internal/httputil"
	"github.com/pdiddy/herb-atlas/internal/listing"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

// Summary holds the outcome of a batch download run.
type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the number of image references processed.
func (s Summary) Total() int {
	return s.Downloaded + s.Skipped + s.Failed
}

// Download fetches every herb's image into cfg.Dir, skipping herbs with
// no image URL and files that already exist. Progress goes to w.
func Download(ctx context.Context, herbs []types.HerbRecord, cfg types.ImagesConfig, w io.Writer) (Summary, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating image directory %s: %w", cfg.Dir, err)
	}

	var summary Summary
	for i := range herbs {
		h := &herbs[i]
		if h.HerbImageURL == "" {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		dest := filepath.Join(cfg.Dir, imageFileName(h))
		if _, err := os.Stat(dest); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", filepath.Base(dest))
			summary.Skipped++
			continue
		}

		if summary.Downloaded > 0 && cfg.DownloadDelay > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(cfg.DownloadDelay):
			}
		}

		if err := downloadFile(ctx, client, h.HerbImageURL, dest, cfg.UserAgent); err != nil {
			fmt.Fprintf(w, "failed:  %s: %v\n", h.DisplayName(), err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "fetched: %s\n", filepath.Base(dest))
		summary.Downloaded++
	}

	fmt.Fprintf(w, "\ndownloaded: %d, skipped: %d, failed: %d\n",
		summary.Downloaded, summary.Skipped, summary.Failed)
	return summary, nil
}

// imageFileName builds a stable local name from the herb's folded name
// and the URL's extension.
func imageFileName(h *types.HerbRecord) string {
	ext := ".jpg"
	if u, err := url.Parse(h.HerbImageURL); err == nil {
		if e := path.Ext(u.Path); e != "" {
			ext = strings.ToLower(e)
		}
	}
	return listing.FoldName(h.DisplayName()) + ext
}

// downloadFile fetches a URL into dest via a temp file, renaming on
// success so interrupted downloads never leave partial files behind.
func downloadFile(ctx context.Context, client *http.Client, rawURL, dest, userAgent string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
