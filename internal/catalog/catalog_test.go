// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/herb-atlas/pkg/types"
)

// testBackend serves canned JSON per collection path. Paths not in the
// map get a 500.
func testBackend(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/data/", func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path[len("/api/data/"):]]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func testClient(ts *httptest.Server) *Client {
	return NewClient(types.CatalogConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "herb-atlas-test/0.1"},
		BaseURL:    ts.URL,
	})
}

func emptyBodies() map[string]string {
	bodies := make(map[string]string)
	for _, path := range CollectionPaths() {
		bodies[path] = `[]`
	}
	return bodies
}

func TestLoadMergesAndTags(t *testing.T) {
	bodies := emptyBodies()
	bodies[pathCaleNccaomHerbs] = `[{"pinyinName":"Dang Gui","nccaomAndCale":"yes"}]`
	bodies[pathCaleHerbs] = `[{"pinyinName":"Gan Jiang","caleOnly":"yes"}]`
	bodies[pathNccaomHerbs] = `[{"pinyinName":"Gan Jiang","nccaomOnly":"yes"}]`
	bodies[pathCaleNccaomFormulas] = `[{"pinyinName":"Si Jun Zi Tang"}]`
	bodies[pathExtraFormulas] = `[{"pinyinName":"Suan Zao Ren Tang"}]`

	ts := testBackend(t, bodies)
	cat, err := testClient(ts).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cat.Herbs) != 3 {
		t.Fatalf("len(Herbs) = %d, want 3", len(cat.Herbs))
	}
	// Concatenation order: shared, cale, nccaom, extra.
	if cat.Herbs[0].DisplayName() != "Dang Gui" || cat.Herbs[0].Origin != types.OriginCaleNccaom {
		t.Errorf("herb 0 = %s/%s, want Dang Gui/caleNccaom", cat.Herbs[0].DisplayName(), cat.Herbs[0].Origin)
	}
	if cat.Herbs[1].Origin != types.OriginCale || cat.Herbs[2].Origin != types.OriginNccaom {
		t.Errorf("herb origins = %s, %s; want cale, nccaom", cat.Herbs[1].Origin, cat.Herbs[2].Origin)
	}

	// Badges are computed once at build time.
	if cat.Herbs[0].Badge != types.BadgeCaleNccaom {
		t.Errorf("herb 0 badge = %+v, want NCCAOM/CALE", cat.Herbs[0].Badge)
	}
	if cat.Herbs[1].Badge != types.BadgeCale {
		t.Errorf("herb 1 badge = %+v, want CALE", cat.Herbs[1].Badge)
	}

	if len(cat.Formulas) != 2 {
		t.Fatalf("len(Formulas) = %d, want 2", len(cat.Formulas))
	}
	// A shared-collection formula is badged even without flags; same for
	// the extra collection.
	if cat.Formulas[0].Origin != types.FormulaOriginCale || cat.Formulas[0].Badge != types.BadgeCaleNccaom {
		t.Errorf("formula 0 = %s/%+v, want CALE origin with shared badge", cat.Formulas[0].Origin, cat.Formulas[0].Badge)
	}
	if cat.Formulas[1].Origin != types.FormulaOriginExtra || cat.Formulas[1].Badge != types.BadgeExtra {
		t.Errorf("formula 1 = %s/%+v, want EXTRA origin with Extra badge", cat.Formulas[1].Origin, cat.Formulas[1].Badge)
	}
}

// A name present in two origin collections stays two distinct records.
func TestLoadKeepsDuplicateNamesDistinct(t *testing.T) {
	bodies := emptyBodies()
	bodies[pathCaleHerbs] = `[{"pinyinName":"Gan Jiang","caleOnly":"yes"}]`
	bodies[pathNccaomHerbs] = `[{"pinyinName":"Gan Jiang","nccaomOnly":"yes"}]`

	ts := testBackend(t, bodies)
	cat, err := testClient(ts).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cat.Herbs) != 2 {
		t.Fatalf("len(Herbs) = %d, want 2", len(cat.Herbs))
	}
	if cat.Herbs[0].Origin == cat.Herbs[1].Origin {
		t.Errorf("duplicate records share origin %s; they must differ", cat.Herbs[0].Origin)
	}
}

func TestLoadFailsClosed(t *testing.T) {
	bodies := emptyBodies()
	delete(bodies, pathExtraFormulas) // that path now 500s

	ts := testBackend(t, bodies)
	if _, err := testClient(ts).Load(context.Background()); err == nil {
		t.Fatal("Load should fail when any collection fetch fails")
	}
}

func TestLoadFailsOnBadJSON(t *testing.T) {
	bodies := emptyBodies()
	bodies[pathCaleHerbs] = `{not json`

	ts := testBackend(t, bodies)
	if _, err := testClient(ts).Load(context.Background()); err == nil {
		t.Fatal("Load should fail when a collection body is not JSON")
	}
}

func TestLoadHonorsContext(t *testing.T) {
	ts := testBackend(t, emptyBodies())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testClient(ts).Load(ctx); err == nil {
		t.Fatal("Load should fail once the view's context is cancelled")
	}
}

func TestBuildMissingCollection(t *testing.T) {
	raw := Raw{}
	if _, err := Build(raw); err == nil {
		t.Fatal("Build should fail on a missing collection")
	}
}

func TestFlexShapesSurviveAggregation(t *testing.T) {
	bodies := emptyBodies()
	bodies[pathNccaomHerbs] = `[{
		"pinyinName":["Sheng Jiang"],
		"englishNames":["Fresh Ginger","Dried Ginger"],
		"channelsEntered":"Lung, Spleen, Stomach",
		"properties":{"taste":"acrid","temperature":"warm"}
	}]`

	ts := testBackend(t, bodies)
	cat, err := testClient(ts).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	h := cat.Herbs[0]
	if h.DisplayName() != "Sheng Jiang" {
		t.Errorf("DisplayName() = %q, want Sheng Jiang", h.DisplayName())
	}
	if got := h.EnglishNames.String(); got != "Fresh Ginger, Dried Ginger" {
		t.Errorf("EnglishNames = %q", got)
	}
	if got := h.ChannelsEntered.String(); got != "Lung, Spleen, Stomach" {
		t.Errorf("ChannelsEntered = %q", got)
	}
	if got := h.Properties.String(); got != "acrid, warm" {
		t.Errorf("Properties = %q", got)
	}
}
