// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/catalog"
	"github.com/pdiddy/herb-atlas/internal/listing"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the full record for a herb or formula",
	Long: `Show looks up a record by name (herbs first, then formulas) and prints
every populated field. A name with no record is reported as not found,
not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		offline, _ := cmd.Flags().GetBool("offline")
		cfg := appConfig()

		cat, err := loadCatalog(cmd.Context(), cfg, offline)
		if err != nil {
			return err
		}

		target := listing.FoldName(name)

		for i := range cat.Herbs {
			h := &cat.Herbs[i]
			if listing.FoldName(h.DisplayName()) == target {
				printHerb(os.Stdout, h)
				return nil
			}
		}

		for i := range cat.Formulas {
			f := &cat.Formulas[i]
			if listing.FoldName(f.DisplayName()) == target {
				printFormula(os.Stdout, f)
				// Category pages carry supplementary text keyed by name;
				// enrich when it is available and not already on the record.
				if !offline && f.KeyActions.IsZero() && f.Explanation.IsZero() {
					enrichFromCategoryList(cmd, cfg, name)
				}
				return nil
			}
		}

		fmt.Printf("No herb or formula named %q.\n", name)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("offline", false, "use the local sync cache instead of the backend")

	rootCmd.AddCommand(showCmd)
}

func enrichFromCategoryList(cmd *cobra.Command, cfg types.AppConfig, name string) {
	list, err := catalog.NewClient(cfg.Catalog).FetchCategoryList(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: category list fetch failed: %v\n", err)
		return
	}
	entry, ok := list.Lookup(name)
	if !ok {
		return
	}
	printField(os.Stdout, "Key actions", entry.KeyActions.String())
	printField(os.Stdout, "Explanation", entry.Explanation.String())
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-16s %s\n", label+":", value)
}

func printHerb(w io.Writer, h *types.HerbRecord) {
	fmt.Fprintf(w, "%s (herb)\n", h.DisplayName())
	if !h.Badge.IsZero() {
		fmt.Fprintf(w, "%-16s %s\n", "Badge:", h.Badge.Label)
	}
	printField(w, "Origin", string(h.Origin))
	printField(w, "English", h.EnglishNames.String())
	printField(w, "Pharmaceutical", h.PharmaceuticalName.String())
	printField(w, "Chinese", h.ChineseCharacters.String())
	printField(w, "Category", h.Category.String())
	printField(w, "Properties", h.Properties.String())
	printField(w, "Channels", h.ChannelsEntered.String())
	printField(w, "Actions", h.Actions.String())
	printField(w, "Indications", h.Indications.String())
	printField(w, "Dosage", h.Dosage.String())
	printField(w, "Cautions", h.CautionsAndContraindications.String())
	printField(w, "Notes", h.Notes.String())
	printField(w, "Formats", h.Formats.String())
	if h.YoSanCarries != nil {
		fmt.Fprintf(w, "%-16s %v\n", "Dispensary:", *h.YoSanCarries)
	}
}

func printFormula(w io.Writer, f *types.FormulaRecord) {
	fmt.Fprintf(w, "%s (formula)\n", f.DisplayName())
	if !f.Badge.IsZero() {
		fmt.Fprintf(w, "%-16s %s\n", "Badge:", f.Badge.Label)
	}
	printField(w, "Origin", string(f.Origin))
	printField(w, "English", f.EnglishName.String())
	printField(w, "Chinese", f.ChineseCharacters.String())
	printField(w, "Category", f.Category.String())
	printField(w, "Ingredients", f.IngredientsAndDosages.String())
	printField(w, "Actions", f.Actions.String())
	printField(w, "Indications", f.Indications.String())
	printField(w, "Modifications", f.Modifications.String())
	printField(w, "Key actions", f.KeyActions.String())
	printField(w, "Explanation", f.Explanation.String())
	printField(w, "Cautions", f.CautionsAndContraindications.String())
	printField(w, "Notes", f.Notes.String())
	printField(w, "Formats", f.Formats.String())
	if carries, known := f.Carries(); known {
		fmt.Fprintf(w, "%-16s %v\n", "Dispensary:", carries)
	}
}
