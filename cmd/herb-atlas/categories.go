// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/catalog"
	"github.com/pdiddy/herb-atlas/internal/listing"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse the herb category tree",
	Long: `Categories prints the backend's herb category tree. Origin toggles hide
entries whose catalog record belongs to a disabled origin; names with no
catalog record always stay visible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()

		cat, err := loadCatalog(cmd.Context(), cfg, false)
		if err != nil {
			return err
		}

		list, err := catalog.NewClient(cfg.Catalog).FetchCategoryList(cmd.Context())
		if err != nil {
			return err
		}

		printCategoryTree(os.Stdout, list, cat, herbTogglesFromFlags(cmd), formulaTogglesFromFlags(cmd))
		return nil
	},
}

func init() {
	addToggleFlags(categoriesCmd)

	rootCmd.AddCommand(categoriesCmd)
}

// addToggleFlags registers the origin toggles shared by the listing
// commands. Each origin defaults to visible.
func addToggleFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("shared", true, "show herbs and formulas on both exam lists")
	cmd.Flags().Bool("cale", true, "show CALE-only herbs")
	cmd.Flags().Bool("nccaom", true, "show NCCAOM-only herbs and formulas")
	cmd.Flags().Bool("extra", true, "show extra curated herbs and formulas")
}

func herbTogglesFromFlags(cmd *cobra.Command) listing.HerbToggles {
	shared, _ := cmd.Flags().GetBool("shared")
	cale, _ := cmd.Flags().GetBool("cale")
	nccaom, _ := cmd.Flags().GetBool("nccaom")
	extra, _ := cmd.Flags().GetBool("extra")
	return listing.HerbToggles{CaleNccaom: shared, Cale: cale, Nccaom: nccaom, Extra: extra}
}

func formulaTogglesFromFlags(cmd *cobra.Command) listing.FormulaToggles {
	shared, _ := cmd.Flags().GetBool("shared")
	nccaom, _ := cmd.Flags().GetBool("nccaom")
	extra, _ := cmd.Flags().GetBool("extra")
	return listing.FormulaToggles{CaleNccaom: shared, Nccaom: nccaom, Extra: extra}
}

func printCategoryTree(w io.Writer, list *catalog.CategoryList, cat *catalog.Catalog,
	ht listing.HerbToggles, ft listing.FormulaToggles) {
	for _, category := range list.Categories {
		fmt.Fprintln(w, category.Name)
		printCategoryEntries(w, "  ", category.Herbs, category.Formulas, cat, ht, ft)
		for _, sub := range category.Subcategories {
			fmt.Fprintf(w, "  %s\n", sub.Name)
			printCategoryEntries(w, "    ", sub.Herbs, sub.Formulas, cat, ht, ft)
		}
	}
}

func printCategoryEntries(w io.Writer, indent string, herbs, formulas []catalog.Entry,
	cat *catalog.Catalog, ht listing.HerbToggles, ft listing.FormulaToggles) {
	for _, e := range herbs {
		if listing.HerbVisible(e.Name, cat.Herbs, ht) {
			fmt.Fprintf(w, "%s%s\n", indent, e.Name)
		}
	}
	for _, e := range formulas {
		if listing.FormulaVisible(e.Name, cat.Formulas, ft) {
			fmt.Fprintf(w, "%s%s\n", indent, e.Name)
		}
	}
}
