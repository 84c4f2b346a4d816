// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/herb-atlas/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search herbs and formulas by free text",
	Long: `Search scans every searchable field of the merged catalog for the query
as a case-insensitive substring. Herb matches are listed before formula
matches; the first row is what submit-without-selection navigates to.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		kind, _ := cmd.Flags().GetString("kind")
		asJSON, _ := cmd.Flags().GetBool("json")
		firstOnly, _ := cmd.Flags().GetBool("first")
		offline, _ := cmd.Flags().GetBool("offline")

		cat, err := loadCatalog(cmd.Context(), appConfig(), offline)
		if err != nil {
			return err
		}

		var matches []search.Match
		switch kind {
		case "herb":
			matches = search.Herbs(query, cat.Herbs)
		case "formula":
			matches = search.Formulas(query, cat.Formulas)
		case "all":
			matches = search.All(query, cat.Herbs, cat.Formulas)
		default:
			return fmt.Errorf("unknown kind %q: use herb, formula, or all", kind)
		}

		if firstOnly {
			if m, ok := search.First(matches); ok {
				matches = matches[:0]
				matches = append(matches, m)
			} else {
				matches = nil
			}
		}

		if asJSON {
			return writeMatchesJSON(os.Stdout, matches, query)
		}
		writeMatchesTable(os.Stdout, matches, query)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("kind", "all", "record kind to search: herb, formula, or all")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("first", false, "print only the first result (herb-priority rule)")
	searchCmd.Flags().Bool("offline", false, "use the local sync cache instead of the backend")

	rootCmd.AddCommand(searchCmd)
}

// matchRow is the serializable view of a match.
type matchRow struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Badge   string `json:"badge,omitempty"`
	Field   string `json:"match_field"`
	Context string `json:"match_context"`
}

func matchRows(matches []search.Match, query string) []matchRow {
	rows := make([]matchRow, len(matches))
	for i, m := range matches {
		rows[i] = matchRow{
			Kind:    string(m.Kind),
			Name:    m.DisplayName(),
			Badge:   m.Badge().Label,
			Field:   m.Field,
			Context: search.Render(search.Highlight(m.Text, query), "[", "]"),
		}
	}
	return rows
}

func writeMatchesJSON(w io.Writer, matches []search.Match, query string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matchRows(matches, query))
}

func writeMatchesTable(w io.Writer, matches []search.Match, query string) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-28s  %-8s  %-12s  %-28s  %s\n",
		"Rank", "Name", "Kind", "Badge", "Field", "Context")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, row := range matchRows(matches, query) {
		context := row.Context
		if len(context) > 60 {
			context = context[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-28s  %-8s  %-12s  %-28s  %s\n",
			i+1, truncate(row.Name, 28), row.Kind, row.Badge, row.Field, context)
	}

	fmt.Fprintf(w, "\n%d results\n", len(matches))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
