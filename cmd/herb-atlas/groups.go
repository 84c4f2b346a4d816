// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/catalog"
	"github.com/pdiddy/herb-atlas/internal/listing"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Browse the flat herb group list",
	Long: `Groups prints the backend's herb group reference list. Group entry names
may carry a parenthetical variant suffix; visibility is matched against
the catalog with the suffix stripped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()

		cat, err := loadCatalog(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}

		list, err := catalog.NewClient(cfg.Catalog).FetchGroupList(cmd.Context())
		if err != nil {
			return err
		}

		toggles := herbTogglesFromFlags(cmd)
		for _, group := range list.Groups {
			fmt.Fprintln(os.Stdout, group.Name)
			for _, e := range group.Herbs {
				if listing.GroupHerbVisible(e.Name, cat.Herbs, toggles) {
					fmt.Fprintf(os.Stdout, "  %s\n", e.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	addToggleFlags(groupsCmd)

	rootCmd.AddCommand(groupsCmd)
}
