// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestHerbBadgePriority(t *testing.T) {
	tests := []struct {
		name string
		herb HerbRecord
		want Badge
	}{
		{"no flags", HerbRecord{}, Badge{}},
		{"cale only", HerbRecord{CaleOnly: "yes"}, BadgeCale},
		{"shared", HerbRecord{NccaomAndCale: "yes"}, BadgeCaleNccaom},
		{"shared alt spelling", HerbRecord{NccaomAndCaleOnly: "yes"}, BadgeCaleNccaom},
		{"nccaom only", HerbRecord{NccaomOnly: "yes"}, BadgeNccaom},
		{"extra", HerbRecord{ExtraHerb: "yes"}, BadgeExtra},
		{"cale outranks shared", HerbRecord{CaleOnly: "yes", NccaomAndCale: "yes"}, BadgeCale},
		{"shared outranks nccaom", HerbRecord{NccaomAndCale: "yes", NccaomOnly: "yes"}, BadgeCaleNccaom},
		{"nccaom outranks extra", HerbRecord{NccaomOnly: "yes", ExtraHerb: "yes"}, BadgeNccaom},
		{"non-yes flag ignored", HerbRecord{CaleOnly: "no"}, Badge{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HerbBadge(&tt.herb); got != tt.want {
				t.Errorf("HerbBadge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Every combination of the four herb flags must land on one of the five
// defined outcomes.
func TestHerbBadgeAllCombinations(t *testing.T) {
	defined := map[Badge]bool{
		{}:              true,
		BadgeCale:       true,
		BadgeCaleNccaom: true,
		BadgeNccaom:     true,
		BadgeExtra:      true,
	}
	yes := func(on bool) string {
		if on {
			return "yes"
		}
		return ""
	}
	for mask := 0; mask < 16; mask++ {
		herb := HerbRecord{
			CaleOnly:      yes(mask&1 != 0),
			NccaomAndCale: yes(mask&2 != 0),
			NccaomOnly:    yes(mask&4 != 0),
			ExtraHerb:     yes(mask&8 != 0),
		}
		got := HerbBadge(&herb)
		if !defined[got] {
			t.Errorf("mask %04b: HerbBadge() = %+v, not a defined outcome", mask, got)
		}
	}
}

func TestFormulaBadge(t *testing.T) {
	tests := []struct {
		name    string
		formula FormulaRecord
		want    Badge
	}{
		{"no flags no origin", FormulaRecord{}, Badge{}},
		{"shared flag", FormulaRecord{CaleAndNccaom: "yes"}, BadgeCaleNccaom},
		{"cale origin without flag", FormulaRecord{Origin: FormulaOriginCale}, BadgeCaleNccaom},
		{"nccaom flag", FormulaRecord{Nccaom: "yes"}, BadgeNccaom},
		{"shared flag outranks nccaom", FormulaRecord{CaleAndNccaom: "yes", Nccaom: "yes"}, BadgeCaleNccaom},
		{"extra flag", FormulaRecord{ExtraFormula: "yes"}, BadgeExtra},
		{"extra origin without flag", FormulaRecord{Origin: FormulaOriginExtra}, BadgeExtra},
		{"nccaom origin alone gives nothing", FormulaRecord{Origin: FormulaOriginNccaom}, Badge{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormulaBadge(&tt.formula); got != tt.want {
				t.Errorf("FormulaBadge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormulaCarries(t *testing.T) {
	yes := true
	tests := []struct {
		name        string
		formula     FormulaRecord
		wantCarries bool
		wantKnown   bool
	}{
		{"unknown", FormulaRecord{}, false, false},
		{"camel spelling", FormulaRecord{YoSanCarries: &yes}, true, true},
		{"lower spelling", FormulaRecord{YosanCarriesAlt: &yes}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carries, known := tt.formula.Carries()
			if carries != tt.wantCarries || known != tt.wantKnown {
				t.Errorf("Carries() = (%v, %v), want (%v, %v)", carries, known, tt.wantCarries, tt.wantKnown)
			}
		})
	}
}
