// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// HerbOrigin identifies which backend collection a herb was fetched from.
// It is assigned at aggregation time and is independent of the content
// flags, which the sources also set for badge display.
type HerbOrigin string

const (
	// OriginCaleNccaom marks herbs from the shared CALE+NCCAOM collection.
	OriginCaleNccaom HerbOrigin = "caleNccaom"

	// OriginCale marks herbs from the CALE-only collection.
	OriginCale HerbOrigin = "cale"

	// OriginNccaom marks herbs from the NCCAOM-only collection.
	OriginNccaom HerbOrigin = "nccaom"

	// OriginExtraHerb marks herbs curated beyond either exam body.
	OriginExtraHerb HerbOrigin = "extra"
)

// HerbRecord is one herb as served by the catalog collections. Fields
// whose shape varies across sources are Flex; content flags are the
// literal "yes" strings the sources use.
type HerbRecord struct {
	PinyinName                   Flex   `json:"pinyinName,omitempty" yaml:"pinyin_name,omitempty"`
	Name                         string `json:"name,omitempty" yaml:"name,omitempty"`
	EnglishNames                 Flex   `json:"englishNames,omitempty" yaml:"english_names,omitempty"`
	Category                     Flex   `json:"category,omitempty" yaml:"category,omitempty"`
	PharmaceuticalName           Flex   `json:"pharmaceuticalName,omitempty" yaml:"pharmaceutical_name,omitempty"`
	ChineseCharacters            Flex   `json:"chineseCharacters,omitempty" yaml:"chinese_characters,omitempty"`
	Keywords                     Flex   `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Actions                      Flex   `json:"actions,omitempty" yaml:"actions,omitempty"`
	Indications                  Flex   `json:"indications,omitempty" yaml:"indications,omitempty"`
	Notes                        Flex   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Dosage                       Flex   `json:"dosage,omitempty" yaml:"dosage,omitempty"`
	CautionsAndContraindications Flex   `json:"cautionsAndContraindications,omitempty" yaml:"cautions_and_contraindications,omitempty"`
	Properties                   Flex   `json:"properties,omitempty" yaml:"properties,omitempty"`
	ChannelsEntered              Flex   `json:"channelsEntered,omitempty" yaml:"channels_entered,omitempty"`
	HerbImageURL                 string `json:"herbImageURL,omitempty" yaml:"herb_image_url,omitempty"`
	Formats                      Flex   `json:"formats,omitempty" yaml:"formats,omitempty"`

	// YoSanCarries is tri-state: true, false, or unknown (nil).
	YoSanCarries *bool `json:"yoSanCarries,omitempty" yaml:"yo_san_carries,omitempty"`

	// Content flags, "yes" or absent. NccaomAndCale and NccaomAndCaleOnly
	// are two spellings of the same shared-content flag found in the wild.
	NccaomAndCale     string `json:"nccaomAndCale,omitempty" yaml:"-"`
	NccaomAndCaleOnly string `json:"nccaomAndCaleOnly,omitempty" yaml:"-"`
	CaleOnly          string `json:"caleOnly,omitempty" yaml:"-"`
	NccaomOnly        string `json:"nccaomOnly,omitempty" yaml:"-"`
	ExtraHerb         string `json:"extraHerb,omitempty" yaml:"-"`

	// Origin and Badge are set once by the aggregator, never by decoding.
	Origin HerbOrigin `json:"_type,omitempty" yaml:"origin,omitempty"`
	Badge  Badge      `json:"-" yaml:"-"`
}

// DisplayName returns the canonical name: the first pinyin spelling when
// one exists, the plain name field otherwise.
func (h *HerbRecord) DisplayName() string {
	if s := h.PinyinName.First(); s != "" {
		return s
	}
	return h.Name
}

// Shared reports whether the record carries either spelling of the
// NCCAOM-and-CALE content flag.
func (h *HerbRecord) Shared() bool {
	return flagSet(h.NccaomAndCale) || flagSet(h.NccaomAndCaleOnly)
}

// flagSet reports whether a content flag holds the sources' "yes" marker.
func flagSet(flag string) bool {
	return strings.EqualFold(flag, "yes")
}
