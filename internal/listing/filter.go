// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import "github.com/pdiddy/herb-atlas/pkg/types"

// HerbToggles enables catalog origins in a herb listing. A zero value
// hides every origin; use AllHerbOrigins for the default view.
type HerbToggles struct {
	CaleNccaom bool
	Cale       bool
	Nccaom     bool
	Extra      bool
}

// AllHerbOrigins returns toggles with every origin enabled.
func AllHerbOrigins() HerbToggles {
	return HerbToggles{CaleNccaom: true, Cale: true, Nccaom: true, Extra: true}
}

func (t HerbToggles) enabled(origin types.HerbOrigin) bool {
	switch origin {
	case types.OriginCaleNccaom:
		return t.CaleNccaom
	case types.OriginCale:
		return t.Cale
	case types.OriginNccaom:
		return t.Nccaom
	case types.OriginExtraHerb:
		return t.Extra
	}
	return true
}

// FormulaToggles enables catalog origins in a formula listing.
type FormulaToggles struct {
	CaleNccaom bool
	Nccaom     bool
	Extra      bool
}

// AllFormulaOrigins returns toggles with every origin enabled.
func AllFormulaOrigins() FormulaToggles {
	return FormulaToggles{CaleNccaom: true, Nccaom: true, Extra: true}
}

func (t FormulaToggles) enabled(origin types.FormulaOrigin) bool {
	switch origin {
	case types.FormulaOriginCale:
		return t.CaleNccaom
	case types.FormulaOriginNccaom:
		return t.Nccaom
	case types.FormulaOriginExtra:
		return t.Extra
	}
	return true
}

// HerbVisible reports whether a listed herb name should be shown. The
// first record whose folded pinyin name or plain name equals the folded
// target governs visibility; a name with no backing record is always
// visible, so static reference entries never disappear. When the same
// name exists in several origin collections the first one in aggregation
// order wins everywhere the name is listed.
func HerbVisible(name string, herbs []types.HerbRecord, toggles HerbToggles) bool {
	return herbVisibleFolded(FoldName(name), herbs, toggles)
}

// GroupHerbVisible is HerbVisible for herb-group entries, whose names may
// carry a parenthetical variant suffix absent from the catalog records.
func GroupHerbVisible(name string, herbs []types.HerbRecord, toggles HerbToggles) bool {
	return herbVisibleFolded(FoldGroupName(name), herbs, toggles)
}

func herbVisibleFolded(target string, herbs []types.HerbRecord, toggles HerbToggles) bool {
	if target == "" {
		return true
	}
	for i := range herbs {
		h := &herbs[i]
		if FoldName(h.PinyinName.First()) == target || (h.Name != "" && FoldName(h.Name) == target) {
			return toggles.enabled(h.Origin)
		}
	}
	return true
}

// FormulaVisible reports whether a listed formula name should be shown,
// with the same first-match and fail-open rules as HerbVisible.
func FormulaVisible(name string, formulas []types.FormulaRecord, toggles FormulaToggles) bool {
	target := FoldName(name)
	if target == "" {
		return true
	}
	for i := range formulas {
		if FoldName(formulas[i].PinyinName.First()) == target {
			return toggles.enabled(formulas[i].Origin)
		}
	}
	return true
}
