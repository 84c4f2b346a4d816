// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"

	"github.com/pdiddy/herb-atlas/pkg/types"
)

func testHerbs() []types.HerbRecord {
	return []types.HerbRecord{
		{
			PinyinName:   types.FlexString("Sheng Jiang"),
			EnglishNames: types.FlexList("Fresh Ginger", "Dried Ginger"),
			Actions:      types.FlexString("Releases the exterior, warms the middle"),
		},
		{
			PinyinName: types.FlexString("Dang Gui"),
			Category:   types.FlexString("Herbs That Tonify The Blood"),
			Keywords:   types.FlexString("blood tonic"),
		},
		{
			// "ginger" appears only in a field outside the searched list.
			PinyinName:   types.FlexString("Gan Cao"),
			HerbImageURL: "https://img.example.edu/ginger.jpg",
		},
	}
}

func testFormulas() []types.FormulaRecord {
	return []types.FormulaRecord{
		{
			PinyinName:            types.FlexString("Dang Gui Bu Xue Tang"),
			IngredientsAndDosages: types.FlexList("Huang Qi 30g", "Dang Gui 6g"),
		},
		{
			PinyinName:    types.FlexString("Xiao Yao San"),
			Modifications: types.FlexString("For blood deficiency add Dang Gui"),
		},
	}
}

func TestHerbsSubstringCaseInsensitive(t *testing.T) {
	matches := Herbs("GINGER", testHerbs())
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].DisplayName() != "Sheng Jiang" {
		t.Errorf("matched %q, want Sheng Jiang", matches[0].DisplayName())
	}
	if matches[0].Field != "englishNames" {
		t.Errorf("Field = %q, want englishNames", matches[0].Field)
	}
}

func TestHerbsFirstFieldRetained(t *testing.T) {
	// "jiang" is in pinyinName, so scanning stops before actions.
	matches := Herbs("jiang", testHerbs())
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Field != "pinyinName" {
		t.Errorf("Field = %q, want pinyinName", matches[0].Field)
	}
	if matches[0].Text != "Sheng Jiang" {
		t.Errorf("Text = %q, want Sheng Jiang", matches[0].Text)
	}
}

func TestHerbsEmptyQueryIsInert(t *testing.T) {
	if got := Herbs("", testHerbs()); got != nil {
		t.Errorf("Herbs(\"\") = %v, want nil", got)
	}
	if got := Formulas("", testFormulas()); got != nil {
		t.Errorf("Formulas(\"\") = %v, want nil", got)
	}
}

func TestHerbsUnsearchedFieldNeverMatches(t *testing.T) {
	// Gan Cao contains "ginger" only in herbImageURL, which is not in the
	// field list.
	matches := Herbs("ginger", testHerbs())
	for _, m := range matches {
		if m.DisplayName() == "Gan Cao" {
			t.Error("herbImageURL must not be searched")
		}
	}
}

func TestSearchPreservesInputOrder(t *testing.T) {
	matches := Herbs("g", testHerbs()) // matches several records
	if len(matches) < 2 {
		t.Fatalf("len(matches) = %d, want >= 2", len(matches))
	}
	if matches[0].DisplayName() != "Sheng Jiang" || matches[1].DisplayName() != "Dang Gui" {
		t.Errorf("order = %q, %q; want input order", matches[0].DisplayName(), matches[1].DisplayName())
	}
}

func TestFormulasSearchIngredients(t *testing.T) {
	matches := Formulas("huang qi", testFormulas())
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Field != "ingredientsAndDosages" {
		t.Errorf("Field = %q, want ingredientsAndDosages", matches[0].Field)
	}
}

func TestAllHerbPriorityFirst(t *testing.T) {
	// "dang gui" matches one herb and two formulas; the herb comes first.
	matches := All("dang gui", testHerbs(), testFormulas())
	if len(matches) != 3 {
		t.Fatalf("len(matches) = %d, want 3", len(matches))
	}

	first, ok := First(matches)
	if !ok {
		t.Fatal("First() missed")
	}
	if first.Kind != KindHerb || first.DisplayName() != "Dang Gui" {
		t.Errorf("First() = %s %q, want the herb", first.Kind, first.DisplayName())
	}
}

// A name duplicated across origin collections stays two records, and a
// search for it returns both.
func TestHerbsReturnDuplicateNameRecords(t *testing.T) {
	herbs := []types.HerbRecord{
		{PinyinName: types.FlexString("Gan Jiang"), Origin: types.OriginCale},
		{PinyinName: types.FlexString("Gan Jiang"), Origin: types.OriginNccaom},
	}

	matches := Herbs("gan jiang", herbs)
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].Herb.Origin == matches[1].Herb.Origin {
		t.Errorf("both matches share origin %s; they must be distinct records", matches[0].Herb.Origin)
	}
}

func TestFirstEmpty(t *testing.T) {
	if _, ok := First(nil); ok {
		t.Error("First(nil) should report no match")
	}
}

func TestNoFieldContainsQuery(t *testing.T) {
	if got := All("A52439", testHerbs(), testFormulas()); len(got) != 0 {
		t.Errorf("len(matches) = %d, want 0", len(got))
	}
}

func TestAbsentFieldsDoNotMatch(t *testing.T) {
	herbs := []types.HerbRecord{{PinyinName: types.FlexString("Bai Zhu")}}
	if got := Herbs("tonify", herbs); len(got) != 0 {
		t.Errorf("absent fields matched: %v", got)
	}
}
