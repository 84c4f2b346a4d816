// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/pdiddy/herb-atlas/pkg/types"
)

// Collection paths under /api/data/. Concatenation order is fixed: it
// determines which record a duplicated name resolves to and which match
// comes first in search output.
const (
	pathCaleNccaomHerbs    = "caleandnccaomherbs"
	pathCaleHerbs          = "caleherbs"
	pathNccaomHerbs        = "nccaomherbs"
	pathExtraHerbs         = "extraherbs"
	pathCaleNccaomFormulas = "caleandnccaomformulas"
	pathNccaomFormulas     = "nccaomformulas"
	pathExtraFormulas      = "extraformulas"
	pathHerbCategoryList   = "herbcategorylist"
	pathHerbGroupsList     = "herbgroupslist"
)

var herbCollections = []struct {
	path   string
	origin types.HerbOrigin
}{
	{pathCaleNccaomHerbs, types.OriginCaleNccaom},
	{pathCaleHerbs, types.OriginCale},
	{pathNccaomHerbs, types.OriginNccaom},
	{pathExtraHerbs, types.OriginExtraHerb},
}

var formulaCollections = []struct {
	path   string
	origin types.FormulaOrigin
}{
	{pathCaleNccaomFormulas, types.FormulaOriginCale},
	{pathNccaomFormulas, types.FormulaOriginNccaom},
	{pathExtraFormulas, types.FormulaOriginExtra},
}

// CollectionPaths lists every data collection the aggregator fetches, in
// concatenation order.
func CollectionPaths() []string {
	paths := make([]string, 0, len(herbCollections)+len(formulaCollections))
	for _, col := range herbCollections {
		paths = append(paths, col.path)
	}
	for _, col := range formulaCollections {
		paths = append(paths, col.path)
	}
	return paths
}

// Catalog holds the merged collections for one page view. Records are
// kept in collection concatenation order; names duplicated across
// collections stay distinct, disambiguated by their origin tags.
type Catalog struct {
	Herbs    []types.HerbRecord
	Formulas []types.FormulaRecord
}

// Build decodes raw collection payloads into a merged catalog. Each
// record is tagged with the origin of the collection it came from and has
// its badge computed once here. A missing or unparsable collection fails
// the whole build.
func Build(raw Raw) (*Catalog, error) {
	var cat Catalog

	for _, col := range herbCollections {
		body, ok := raw[col.path]
		if !ok {
			return nil, fmt.Errorf("missing collection %s", col.path)
		}
		var records []types.HerbRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", col.path, err)
		}
		for i := range records {
			records[i].Origin = col.origin
			records[i].Badge = types.HerbBadge(&records[i])
		}
		cat.Herbs = append(cat.Herbs, records...)
	}

	for _, col := range formulaCollections {
		body, ok := raw[col.path]
		if !ok {
			return nil, fmt.Errorf("missing collection %s", col.path)
		}
		var records []types.FormulaRecord
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", col.path, err)
		}
		for i := range records {
			records[i].Origin = col.origin
			records[i].Badge = types.FormulaBadge(&records[i])
		}
		cat.Formulas = append(cat.Formulas, records...)
	}

	return &cat, nil
}
