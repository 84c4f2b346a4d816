// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/catalog"
	"github.com/pdiddy/herb-atlas/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch every collection into the local cache",
	Long: `Sync downloads all data collections from the backend and stores their
raw payloads in the local SQLite cache, replacing any previous copies.
Commands run with --offline read from this cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()

		raw, err := catalog.NewClient(cfg.Catalog).FetchAll(cmd.Context())
		if err != nil {
			return err
		}

		// Validate before writing so a sync never caches a payload the
		// merge would reject.
		if _, err := catalog.Build(raw); err != nil {
			return err
		}

		s, err := store.Open(cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.SaveAll(cmd.Context(), raw); err != nil {
			return err
		}

		paths := make([]string, 0, len(raw))
		for path := range raw {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintf(os.Stdout, "cached %-28s %7d bytes\n", path, len(raw[path]))
		}
		fmt.Fprintf(os.Stdout, "\n%d collections cached at %s\n", len(raw), cfg.Cache.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
