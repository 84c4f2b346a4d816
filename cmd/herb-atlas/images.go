// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/images"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Download herb illustration images",
	Long: `Images downloads every herb's illustration into the local image
directory. Existing files are kept and individual failures are counted,
not fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()
		offline, _ := cmd.Flags().GetBool("offline")

		cat, err := loadCatalog(cmd.Context(), cfg, offline)
		if err != nil {
			return err
		}

		summary, err := images.Download(cmd.Context(), cat.Herbs, cfg.Images, os.Stdout)
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d downloads failed", summary.Failed, summary.Total())
		}
		return nil
	},
}

func init() {
	imagesCmd.Flags().Bool("offline", false, "use the local sync cache instead of the backend")

	rootCmd.AddCommand(imagesCmd)
}
