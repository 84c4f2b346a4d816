// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"testing"

	"github.com/pdiddy/herb-atlas/pkg/types"
)

func TestFoldName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Gan Jiang", "ganjiang"},
		{"strips hyphens", "Gan-Jiang", "ganjiang"},
		{"strips diacritics", "Dāng Guī", "danggui"},
		{"strips tabs and doubled spaces", "Dang \t Gui", "danggui"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldName(tt.in); got != tt.want {
				t.Errorf("FoldName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFoldGroupName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Da Huang (wine-washed)", "dahuang"},
		{"Da Huang", "dahuang"},
		{"Rén Shēn (red)", "renshen"},
	}
	for _, tt := range tests {
		if got := FoldGroupName(tt.in); got != tt.want {
			t.Errorf("FoldGroupName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func testHerbs() []types.HerbRecord {
	return []types.HerbRecord{
		{PinyinName: types.FlexString("Gan Jiang"), Origin: types.OriginCale},
		{PinyinName: types.FlexList("Dang Gui", "Dang Gui Wei"), Origin: types.OriginCaleNccaom},
		{Name: "Sheng Jiang", Origin: types.OriginNccaom},
		// Same name as the first record from a different collection;
		// the earlier record governs visibility.
		{PinyinName: types.FlexString("Gan Jiang"), Origin: types.OriginNccaom},
	}
}

func TestHerbVisibleToggles(t *testing.T) {
	herbs := testHerbs()

	if HerbVisible("Gan Jiang", herbs, HerbToggles{Cale: false, Nccaom: true}) {
		t.Error("Gan Jiang should be hidden when the CALE toggle is off")
	}
	if !HerbVisible("Gan Jiang", herbs, HerbToggles{Cale: true}) {
		t.Error("Gan Jiang should be visible when the CALE toggle is on")
	}
	if !HerbVisible("Dang Gui", herbs, HerbToggles{CaleNccaom: true}) {
		t.Error("Dang Gui should be visible via the shared toggle")
	}
	if !HerbVisible("Sheng Jiang", herbs, HerbToggles{Nccaom: true}) {
		t.Error("plain-name records should be matched too")
	}
}

func TestHerbVisibleFailOpen(t *testing.T) {
	herbs := testHerbs()
	if !HerbVisible("Wu Wei Zi", herbs, HerbToggles{}) {
		t.Error("a name with no backing record must stay visible with all toggles off")
	}
	if !HerbVisible("", herbs, HerbToggles{}) {
		t.Error("an empty name must stay visible")
	}
}

func TestHerbVisibleFoldsLookup(t *testing.T) {
	herbs := testHerbs()
	if !HerbVisible("dāng-guī", herbs, HerbToggles{CaleNccaom: true}) {
		t.Error("diacritics and hyphens should not defeat the lookup")
	}
}

// Duplicate names across collections resolve by first match, so the first
// collection's toggle governs the name everywhere.
func TestHerbVisibleFirstMatchWins(t *testing.T) {
	herbs := testHerbs()
	visible := HerbVisible("Gan Jiang", herbs, HerbToggles{Cale: false, Nccaom: true, CaleNccaom: true, Extra: true})
	if visible {
		t.Error("the duplicate NCCAOM record must not override the first (CALE) record")
	}
}

func TestGroupHerbVisible(t *testing.T) {
	herbs := testHerbs()
	if GroupHerbVisible("Gan Jiang (fresh)", herbs, HerbToggles{Nccaom: true}) {
		t.Error("group entry should follow its backing record's CALE toggle")
	}
	if !GroupHerbVisible("Gan Jiang (fresh)", herbs, HerbToggles{Cale: true}) {
		t.Error("group entry should be visible when the CALE toggle is on")
	}
}

func TestFormulaVisible(t *testing.T) {
	formulas := []types.FormulaRecord{
		{PinyinName: types.FlexString("Si Jun Zi Tang"), Origin: types.FormulaOriginCale},
		{PinyinName: types.FlexString("Du Huo Ji Sheng Tang"), Origin: types.FormulaOriginExtra},
	}

	if !FormulaVisible("Si Jun Zi Tang", formulas, FormulaToggles{CaleNccaom: true}) {
		t.Error("shared-collection formula should be visible via the shared toggle")
	}
	if FormulaVisible("Du Huo Ji Sheng Tang", formulas, FormulaToggles{CaleNccaom: true}) {
		t.Error("extra formula should be hidden when the extra toggle is off")
	}
	if !FormulaVisible("Bu Zhong Yi Qi Tang", formulas, FormulaToggles{}) {
		t.Error("a formula with no backing record must stay visible")
	}
}
