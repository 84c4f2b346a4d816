// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search scans the merged catalog for records containing a
// free-text query. Matching is a case-insensitive substring test over a
// fixed field list per record type; there is no ranking beyond matched
// or not, and input order is preserved.
package search

import (
	"strings"

	"github.com/pdiddy/herb-atlas/pkg/types"
)

// Kind tags which record type a match came from.
type Kind string

const (
	KindHerb    Kind = "herb"
	KindFormula Kind = "formula"
)

// Match pairs a record with the first field that contained the query.
// Only one field is retained per record; the listing shows it as match
// context.
type Match struct {
	Kind    Kind
	Herb    *types.HerbRecord
	Formula *types.FormulaRecord

	// Field is the wire name of the matched field, Text its normalized
	// content.
	Field string
	Text  string
}

// DisplayName returns the matched record's canonical name.
func (m Match) DisplayName() string {
	if m.Kind == KindHerb {
		return m.Herb.DisplayName()
	}
	return m.Formula.DisplayName()
}

// Badge returns the matched record's cached badge.
func (m Match) Badge() types.Badge {
	if m.Kind == KindHerb {
		return m.Herb.Badge
	}
	return m.Formula.Badge
}

// The searched fields per record type. Fields outside these lists never
// match, whatever they contain.
var herbFields = []struct {
	name  string
	value func(*types.HerbRecord) string
}{
	{"pinyinName", func(h *types.HerbRecord) string { return h.PinyinName.String() }},
	{"englishNames", func(h *types.HerbRecord) string { return h.EnglishNames.String() }},
	{"category", func(h *types.HerbRecord) string { return h.Category.String() }},
	{"pharmaceuticalName", func(h *types.HerbRecord) string { return h.PharmaceuticalName.String() }},
	{"chineseCharacters", func(h *types.HerbRecord) string { return h.ChineseCharacters.String() }},
	{"keywords", func(h *types.HerbRecord) string { return h.Keywords.String() }},
	{"actions", func(h *types.HerbRecord) string { return h.Actions.String() }},
	{"indications", func(h *types.HerbRecord) string { return h.Indications.String() }},
	{"notes", func(h *types.HerbRecord) string { return h.Notes.String() }},
	{"dosage", func(h *types.HerbRecord) string { return h.Dosage.String() }},
	{"cautionsAndContraindications", func(h *types.HerbRecord) string { return h.CautionsAndContraindications.String() }},
	{"properties", func(h *types.HerbRecord) string { return h.Properties.String() }},
	{"channelsEntered", func(h *types.HerbRecord) string { return h.ChannelsEntered.String() }},
}

var formulaFields = []struct {
	name  string
	value func(*types.FormulaRecord) string
}{
	{"pinyinName", func(f *types.FormulaRecord) string { return f.PinyinName.String() }},
	{"englishName", func(f *types.FormulaRecord) string { return f.EnglishName.String() }},
	{"chineseCharacters", func(f *types.FormulaRecord) string { return f.ChineseCharacters.String() }},
	{"category", func(f *types.FormulaRecord) string { return f.Category.String() }},
	{"ingredientsAndDosages", func(f *types.FormulaRecord) string { return f.IngredientsAndDosages.String() }},
	{"actions", func(f *types.FormulaRecord) string { return f.Actions.String() }},
	{"indications", func(f *types.FormulaRecord) string { return f.Indications.String() }},
	{"notes", func(f *types.FormulaRecord) string { return f.Notes.String() }},
	{"cautionsAndContraindications", func(f *types.FormulaRecord) string { return f.CautionsAndContraindications.String() }},
	{"modifications", func(f *types.FormulaRecord) string { return f.Modifications.String() }},
}

// Herbs returns every herb where some searched field contains the query
// as a case-insensitive substring. An empty query matches nothing. Field
// scanning stops at the first hit per record.
func Herbs(query string, herbs []types.HerbRecord) []Match {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for i := range herbs {
		h := &herbs[i]
		for _, field := range herbFields {
			text := field.value(h)
			if text == "" {
				continue
			}
			if strings.Contains(strings.ToLower(text), q) {
				matches = append(matches, Match{Kind: KindHerb, Herb: h, Field: field.name, Text: text})
				break
			}
		}
	}
	return matches
}

// Formulas is Herbs for formula records and their field list.
func Formulas(query string, formulas []types.FormulaRecord) []Match {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for i := range formulas {
		f := &formulas[i]
		for _, field := range formulaFields {
			text := field.value(f)
			if text == "" {
				continue
			}
			if strings.Contains(strings.ToLower(text), q) {
				matches = append(matches, Match{Kind: KindFormula, Formula: f, Field: field.name, Text: text})
				break
			}
		}
	}
	return matches
}

// All searches both collections. Herb matches come before formula
// matches, so the first element is the submit-without-selection target.
func All(query string, herbs []types.HerbRecord, formulas []types.FormulaRecord) []Match {
	matches := Herbs(query, herbs)
	return append(matches, Formulas(query, formulas)...)
}

// First returns the first match under the herb-priority rule. ok is
// false when nothing matched.
func First(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
