// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the herb-atlas CLI, a reference
// client for a Traditional Chinese Medicine herb and formula catalog.
// The backend serves flat JSON collections; every command loads them (or
// the local sync cache) and works on the merged in-memory catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/herb-atlas/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the herb-atlas CLI.
var rootCmd = &cobra.Command{
	Use:   "herb-atlas",
	Short: "Browse and search a TCM herb and formula catalog",
	Long: `herb-atlas is a reference client for a Traditional Chinese Medicine
catalog. The backend exposes herb and formula collections partitioned by
exam-body origin (CALE, NCCAOM, shared, extra); herb-atlas merges them in
memory and provides search, category browsing, formula composition, and a
local offline cache.

Search and listings are client-side: collections are fetched whole and
scanned in memory, matching the backend's flat-JSON contract.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./herb-atlas.yaml or ~/.config/herb-atlas/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("herb-atlas")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "herb-atlas"))
		}
	}

	viper.SetEnvPrefix("HERB_ATLAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
