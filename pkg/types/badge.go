// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Badge is a derived, display-only label summarizing a record's exam-body
// classification. The zero Badge means no badge applies, which is valid.
type Badge struct {
	Label      string `json:"label" yaml:"label"`
	StyleClass string `json:"style_class" yaml:"style_class"`
}

var (
	BadgeCaleNccaom = Badge{Label: "NCCAOM/CALE", StyleClass: "badge-nccaom-cale"}
	BadgeCale       = Badge{Label: "CALE", StyleClass: "badge-cale"}
	BadgeNccaom     = Badge{Label: "NCCAOM", StyleClass: "badge-nccaom"}
	BadgeExtra      = Badge{Label: "Extra", StyleClass: "badge-extra"}
)

// IsZero reports whether no badge applies.
func (b Badge) IsZero() bool {
	return b.Label == ""
}

// HerbBadge classifies a herb by its content flags. First match wins and
// independent flags are never combined: caleOnly, then the shared
// NCCAOM/CALE flag, then nccaomOnly, then extraHerb. The single-exam
// caleOnly flag outranks the shared flag so records carrying both stay
// CALE. Records with no flags get no badge.
func HerbBadge(h *HerbRecord) Badge {
	switch {
	case flagSet(h.CaleOnly):
		return BadgeCale
	case h.Shared():
		return BadgeCaleNccaom
	case flagSet(h.NccaomOnly):
		return BadgeNccaom
	case flagSet(h.ExtraHerb):
		return BadgeExtra
	}
	return Badge{}
}

// FormulaBadge classifies a formula by its flags and aggregation origin.
// A record from the shared collection gets the shared badge even when the
// flag is missing; likewise for the extra collection.
func FormulaBadge(f *FormulaRecord) Badge {
	switch {
	case flagSet(f.CaleAndNccaom) || f.Origin == FormulaOriginCale:
		return BadgeCaleNccaom
	case flagSet(f.Nccaom):
		return BadgeNccaom
	case flagSet(f.ExtraFormula) || f.Origin == FormulaOriginExtra:
		return BadgeExtra
	}
	return Badge{}
}
