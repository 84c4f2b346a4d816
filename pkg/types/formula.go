// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FormulaOrigin identifies which backend collection a formula was fetched
// from. The shared CALE+NCCAOM collection is tagged CALE, mirroring the
// flags the sources set on those records.
type FormulaOrigin string

const (
	FormulaOriginCale   FormulaOrigin = "CALE"
	FormulaOriginNccaom FormulaOrigin = "NCCAOM"
	FormulaOriginExtra  FormulaOrigin = "EXTRA"
)

// FormulaRecord is one formula as served by the catalog collections.
type FormulaRecord struct {
	PinyinName                   Flex `json:"pinyinName,omitempty" yaml:"pinyin_name,omitempty"`
	EnglishName                  Flex `json:"englishName,omitempty" yaml:"english_name,omitempty"`
	ChineseCharacters            Flex `json:"chineseCharacters,omitempty" yaml:"chinese_characters,omitempty"`
	Category                     Flex `json:"category,omitempty" yaml:"category,omitempty"`
	IngredientsAndDosages        Flex `json:"ingredientsAndDosages,omitempty" yaml:"ingredients_and_dosages,omitempty"`
	Actions                      Flex `json:"actions,omitempty" yaml:"actions,omitempty"`
	Indications                  Flex `json:"indications,omitempty" yaml:"indications,omitempty"`
	Notes                        Flex `json:"notes,omitempty" yaml:"notes,omitempty"`
	CautionsAndContraindications Flex `json:"cautionsAndContraindications,omitempty" yaml:"cautions_and_contraindications,omitempty"`
	Modifications                Flex `json:"modifications,omitempty" yaml:"modifications,omitempty"`
	KeyActions                   Flex `json:"keyActions,omitempty" yaml:"key_actions,omitempty"`
	Explanation                  Flex `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Formats                      Flex `json:"formats,omitempty" yaml:"formats,omitempty"`

	// Both spellings of the carries flag appear in the collections.
	YoSanCarries    *bool `json:"yoSanCarries,omitempty" yaml:"yo_san_carries,omitempty"`
	YosanCarriesAlt *bool `json:"yosancarries,omitempty" yaml:"-"`

	// Content flags, "yes" or absent.
	CaleAndNccaom string `json:"caleAndNccaom,omitempty" yaml:"-"`
	Nccaom        string `json:"nccaom,omitempty" yaml:"-"`
	ExtraFormula  string `json:"extraFormula,omitempty" yaml:"-"`

	// Origin and Badge are set once by the aggregator, never by decoding.
	Origin FormulaOrigin `json:"origin,omitempty" yaml:"origin,omitempty"`
	Badge  Badge         `json:"-" yaml:"-"`
}

// DisplayName returns the first pinyin spelling of the formula name.
func (f *FormulaRecord) DisplayName() string {
	return f.PinyinName.First()
}

// Carries resolves the tri-state stocked flag across both spellings.
// Unknown when neither spelling is present.
func (f *FormulaRecord) Carries() (carries, known bool) {
	if f.YoSanCarries != nil {
		return *f.YoSanCarries, true
	}
	if f.YosanCarriesAlt != nil {
		return *f.YosanCarriesAlt, true
	}
	return false, false
}
