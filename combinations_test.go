package combinations

import (
	"sort"
	"testing"

	"github.com/meenmo/combinations/component"
)

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	e := New()
	if !e.Load("testdata/combinations.xml") {
		t.Fatalf("failed to load reference catalog")
	}
	return e
}

func parseLines(lines ...string) []component.Component {
	out := make([]component.Component, len(lines))
	for i, l := range lines {
		out[i] = component.ParseLine(l)
	}
	return out
}

func assertRoleVectorIsPermutation(t *testing.T, roles []int, n int) {
	t.Helper()
	if len(roles) != n {
		t.Fatalf("role vector length = %d, want %d", len(roles), n)
	}
	sorted := append([]int(nil), roles...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("role vector %v is not a permutation of 1..%d", roles, n)
		}
	}
}

func TestEmptyEngineClassifiesUnclassified(t *testing.T) {
	t.Parallel()

	e := New()
	name, roles := e.Classify(parseLines("F 1 2010-03-01"))
	if name != Unclassified || roles != nil {
		t.Fatalf("expected (%q, nil), got (%q, %v)", Unclassified, name, roles)
	}
}

func TestInterCommoditySpread(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	name, roles := e.Classify(parseLines("F 1 2010-03-01", "F -1 2010-03-01"))
	if name != "Inter commodity spread" {
		t.Fatalf("got %q", name)
	}
	assertRoleVectorIsPermutation(t, roles, 2)
}

func TestFutureButterflyPermutationInvariant(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	base := parseLines("F 1 2010-03-01", "F -2 2010-03-02", "F 1 2010-03-03")
	perms := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}
	for _, order := range perms {
		comps := make([]component.Component, len(base))
		for i, idx := range order {
			comps[i] = base[idx]
		}
		name, roles := e.Classify(comps)
		if name != "Future butterfly" {
			t.Fatalf("order %v: got %q", order, name)
		}
		assertRoleVectorIsPermutation(t, roles, 3)
	}
}

func TestBundleRoleVectorModularity(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	comps := parseLines(
		"F 1 2010-03-01", "F 1 2010-06-01", "F 1 2010-09-01", "F 1 2010-12-01",
		"F 1 2010-03-01", "F 1 2010-06-01", "F 1 2010-09-01", "F 1 2010-12-01",
	)
	name, roles := e.Classify(comps)
	if name != "Bundle" {
		t.Fatalf("got %q", name)
	}
	for i := range roles {
		if (roles[i]-1)%4 != i%4 {
			t.Fatalf("role[%d]=%d breaks modular identity form: %v", i, roles[i], roles)
		}
	}
}

func TestOptionsStripScalesAndRejectsOneBadLeg(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	n := 65536
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "P 1 2000 2010-03-01"
	}
	comps := parseLines(lines...)

	name, roles := e.Classify(comps)
	if name != "Options strip" {
		t.Fatalf("got %q", name)
	}
	for i, r := range roles {
		if r != i+1 {
			t.Fatalf("expected identity role vector, mismatch at %d", i)
		}
	}

	comps[n/2] = component.ParseLine("P 2 2000 2010-03-01")
	name, roles = e.Classify(comps)
	if name != Unclassified || roles != nil {
		t.Fatalf("expected Unclassified after perturbing one leg, got %q", name)
	}
}

func TestBoxAllPermutationsClassify(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	base := parseLines(
		"C 1 2000 2010-03-01",
		"P -1 2000 2010-03-01",
		"P 1 2100 2010-03-01",
		"C -1 2100 2010-03-01",
	)

	// A representative sample of permutations rather than the full 24: the
	// matcher's permutation search is exercised exhaustively in
	// template_test.go; this checks the engine wiring end to end.
	perms := [][]int{
		{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 0, 3, 2}, {2, 3, 0, 1}, {0, 2, 1, 3},
	}
	for _, order := range perms {
		comps := make([]component.Component, 4)
		for i, idx := range order {
			comps[i] = base[idx]
		}
		name, roles := e.Classify(comps)
		if name != "Box" {
			t.Fatalf("order %v: got %q", order, name)
		}
		assertRoleVectorIsPermutation(t, roles, 4)
	}
}

func TestStraddleStripJumpsAndFallback(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	comps := parseLines(
		"F 1 1999-12-31",
		"F 1 2000-01-02", // +2d
		"F 1 2000-01-31", // +1m
		"F 1 2000-03-02", // +2m (2000-02-31 normalizes to 2000-03-02)
		"F 1 2000-02-29", // +60d
		"F 1 2000-11-15", // +3q window (2000-10-01 .. 2000-12-31)
		"F 1 2002-12-31", // +3y
	)
	name, _ := e.Classify(comps)
	if name != "Straddle strip jumps" {
		t.Fatalf("got %q", name)
	}

	perturbed := append([]component.Component(nil), comps...)
	perturbed[1] = component.ParseLine("F 1 2000-01-03") // one day off the +2d offset
	name, _ = e.Classify(perturbed)
	if name != "Options strip" && name != Unclassified {
		t.Fatalf("expected fallback away from Straddle strip jumps, got %q", name)
	}
}

func TestCatalogPriorityFixedBeforeMultiple(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)
	// Four quarterly Futures satisfy both "Pack" (Fixed, size 4) and
	// "Bundle" (Multiple, same four legs, any multiple of 4 including 4
	// itself). Pack precedes Bundle in the catalog, so it must win.
	comps := parseLines(
		"F 1 2010-03-01", "F 1 2010-06-01", "F 1 2010-09-01", "F 1 2010-12-01",
	)
	name, roles := e.Classify(comps)
	if name != "Pack" {
		t.Fatalf("got %q, want %q", name, "Pack")
	}
	assertRoleVectorIsPermutation(t, roles, 4)
}

func TestStripRequiresAtLeastTwoLegs(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)

	// A lone Future satisfies no template with one leg: "Strip" now needs
	// a pair, so this must not shadow a genuinely unmatched input.
	name, roles := e.Classify(parseLines("F 1 2010-03-01"))
	if name != Unclassified || roles != nil {
		t.Fatalf("expected (%q, nil) for a lone Future, got (%q, %v)", Unclassified, name, roles)
	}

	// Two consecutive-expiration Futures satisfy Strip's 2-leg shape.
	name, roles = e.Classify(parseLines("F 1 2010-03-01", "F 1 2010-06-01"))
	if name != "Strip" {
		t.Fatalf("got %q, want %q", name, "Strip")
	}
	assertRoleVectorIsPermutation(t, roles, 2)
}

func TestOptionsStripStraddleDoesNotShadowOptionsStrip(t *testing.T) {
	t.Parallel()

	e := mustEngine(t)

	// "Options strip straddle" requires both a Call and a Put leg; an
	// all-Put run must fail its type coverage and fall through to the
	// single-leg "Options strip" instead of matching here.
	comps := parseLines("P 1 2000 2010-03-01", "P 1 2000 2010-03-02", "P 1 2000 2010-03-03")
	name, roles := e.Classify(comps)
	if name != "Options strip" {
		t.Fatalf("got %q, want %q", name, "Options strip")
	}
	assertRoleVectorIsPermutation(t, roles, 3)
}
