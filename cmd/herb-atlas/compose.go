// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/herb-atlas/internal/cart"
	"github.com/pdiddy/herb-atlas/internal/catalog"
	"github.com/pdiddy/herb-atlas/internal/listing"
	"github.com/pdiddy/herb-atlas/pkg/types"
)

var composeCmd = &cobra.Command{
	Use:   "compose <herb> [herb...]",
	Short: "Compose a custom formula from catalog herbs",
	Long: `Compose fills a selection cart with the named herbs and writes the
resulting formula as a YAML document. Duplicate names collapse to one
entry and unknown names are warned about, not fatal. A cart holds at
most ` + fmt.Sprint(cart.MaxHerbs) + ` herbs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		outDir, _ := cmd.Flags().GetString("out")
		offline, _ := cmd.Flags().GetBool("offline")

		cat, err := loadCatalog(cmd.Context(), appConfig(), offline)
		if err != nil {
			return err
		}

		c := cart.New()
		for _, arg := range args {
			h, ok := findHerb(cat, arg)
			if !ok {
				fmt.Fprintf(os.Stderr, "warning: no herb named %q, skipping\n", arg)
				continue
			}
			if err := c.Add(h); err != nil {
				if errors.Is(err, cart.ErrCartFull) {
					fmt.Fprintln(os.Stderr, c.Alert())
					break
				}
				return err
			}
		}

		if c.Len() == 0 {
			return fmt.Errorf("no herbs selected; nothing to compose")
		}

		path, err := writeFormula(name, outDir, c.Herbs())
		if err != nil {
			return err
		}
		c.Clear()

		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
		return nil
	},
}

func init() {
	composeCmd.Flags().String("name", "My Formula", "name of the composed formula")
	composeCmd.Flags().String("out", filepath.Join("output", "formulas"), "directory for composed formula files")
	composeCmd.Flags().Bool("offline", false, "use the local sync cache instead of the backend")

	rootCmd.AddCommand(composeCmd)
}

func findHerb(cat *catalog.Catalog, name string) (types.HerbRecord, bool) {
	target := listing.FoldName(name)
	for i := range cat.Herbs {
		if listing.FoldName(cat.Herbs[i].DisplayName()) == target {
			return cat.Herbs[i], true
		}
	}
	return types.HerbRecord{}, false
}

// composedFormula is the YAML document a compose run produces.
type composedFormula struct {
	Name      string         `yaml:"name"`
	CreatedAt string         `yaml:"created_at"`
	Herbs     []composedHerb `yaml:"herbs"`
}

type composedHerb struct {
	Name   string `yaml:"name"`
	Origin string `yaml:"origin"`
	Badge  string `yaml:"badge,omitempty"`
	Dosage string `yaml:"dosage,omitempty"`
}

func writeFormula(name, outDir string, herbs []types.HerbRecord) (string, error) {
	doc := composedFormula{
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Herbs:     make([]composedHerb, len(herbs)),
	}
	for i, h := range herbs {
		doc.Herbs[i] = composedHerb{
			Name:   h.DisplayName(),
			Origin: string(h.Origin),
			Badge:  h.Badge.Label,
			Dosage: h.Dosage.String(),
		}
	}

	body, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding formula: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	path := filepath.Join(outDir, formulaFileName(name))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("writing formula: %w", err)
	}
	return path, nil
}

func formulaFileName(name string) string {
	slug := listing.FoldName(name)
	if slug == "" {
		slug = "formula"
	}
	return slug + ".yaml"
}
