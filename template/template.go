// Package template is the in-memory representation of one classified
// strategy (name, cardinality kind, ordered legs with per-leg constraints)
// and the matching algorithm that decides whether a template fits a
// components list while recovering the leg-to-component permutation.
package template

import (
	"fmt"
	"log"

	"github.com/meenmo/combinations/calendar"
	"github.com/meenmo/combinations/component"
)

// CardinalityKind is the closed set of shapes a Template's matching search
// can take.
type CardinalityKind int

// Fixed matches exactly one copy of the leg list; Multiple matches k
// end-to-end copies; More matches an unbounded repetition of one leg.
const (
	Fixed CardinalityKind = iota
	Multiple
	More
)

func (k CardinalityKind) String() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Multiple:
		return "Multiple"
	case More:
		return "More"
	default:
		return "Unknown"
	}
}

// Template is one named classification rule.
type Template struct {
	Name     string
	Kind     CardinalityKind
	Legs     []Leg
	MinCount int // valid, and required >= 1, when Kind == More
}

// Validate enforces the cardinality invariants from spec.md §3: Fixed and
// Multiple need at least one leg, More needs exactly one leg and
// MinCount >= 1. It does not check symbol/offset label consistency across
// legs. The loader skips (and logs) any template that fails validation
// rather than aborting the whole catalog load.
func (t Template) Validate() error {
	switch t.Kind {
	case Fixed, Multiple:
		if len(t.Legs) < 1 {
			return fmt.Errorf("template %q: Fixed/Multiple requires at least one leg", t.Name)
		}
	case More:
		if len(t.Legs) != 1 {
			return fmt.Errorf("template %q: More requires exactly one leg", t.Name)
		}
		if t.MinCount < 1 {
			return fmt.Errorf("template %q: More requires min_count >= 1", t.Name)
		}
	default:
		return fmt.Errorf("template %q: unknown cardinality kind", t.Name)
	}
	if len(t.Legs) > 0 && t.Legs[0].Expiration.Kind == ExpirationPeriod {
		// spec.md §9 open question: a period-offset leg anchors on the
		// group's offset-0 expiration, which this leg's own position can
		// never have supplied yet. The matcher falls back to the zero Date
		// (epoch) rather than panicking; this is just a load-time heads up.
		log.Printf("template %q: first leg uses a period-offset expiration with no preceding anchor in its group", t.Name)
	}
	return nil
}

// Check decides whether components matches this template, returning the
// leg-order permutation (leg position -> input index) on success.
func (t Template) Check(components []component.Component) (perm []int, ok bool) {
	if !t.preCheck(components) {
		return nil, false
	}
	return t.postCheck(components)
}

func (t Template) preCheck(components []component.Component) bool {
	switch t.Kind {
	case Fixed:
		return len(components) == len(t.Legs) && coversLegTypes(components, t.Legs)
	case Multiple:
		return len(t.Legs) > 0 && len(components) > 0 && len(components)%len(t.Legs) == 0 &&
			coversLegTypes(components, t.Legs)
	case More:
		return len(components) >= t.MinCount
	default:
		return false
	}
}

func (t Template) postCheck(components []component.Component) ([]int, bool) {
	switch t.Kind {
	case Fixed, Multiple:
		return t.searchPermutation(components)
	case More:
		return t.checkMore(components)
	default:
		return nil, false
	}
}

// coversLegTypes reports whether every instrument type required by legs is
// present somewhere in components, abstracting Option legs over Call/Put.
func coversLegTypes(components []component.Component, legs []Leg) bool {
	present := map[component.InstrumentType]bool{}
	for _, c := range components {
		present[c.Type] = true
	}
	for _, leg := range legs {
		switch leg.Type {
		case component.Option:
			if !present[component.Call] && !present[component.Put] {
				return false
			}
		default:
			if !present[leg.Type] {
				return false
			}
		}
	}
	return true
}

// searchPermutation enumerates permutations of [0, len(components)) in
// lexicographic order starting from the identity, returning the first one
// whose grouped constraint set checks out.
func (t Template) searchPermutation(components []component.Component) ([]int, bool) {
	perm := identity(len(components))
	if t.checkPermutation(components, perm) {
		return perm, true
	}
	for nextPermutation(perm) {
		if t.checkPermutation(components, perm) {
			return perm, true
		}
	}
	return nil, false
}

// checkPermutation splits perm into consecutive groups of len(legs) and
// verifies each group independently against the leg list.
func (t Template) checkPermutation(components []component.Component, perm []int) bool {
	n := len(t.Legs)
	for start := 0; start < len(perm); start += n {
		if !t.checkGroup(components, perm[start:start+n]) {
			return false
		}
	}
	return true
}

func (t Template) checkGroup(components []component.Component, group []int) bool {
	strikes := newOffsetGroup[float64]()
	expirations := newOffsetGroup[calendar.Date]()

	for j, leg := range t.Legs {
		comp := components[group[j]]

		if !leg.matchesType(comp.Type) {
			return false
		}
		if !leg.Ratio.Matches(comp.Ratio) {
			return false
		}
		if !strikes.check(leg.StrikeKey, comp.Strike, lessFloat) {
			return false
		}

		switch leg.Expiration.Kind {
		case ExpirationPeriod:
			anchor := expirations.byOffset[0] // zero value (epoch) if absent; see spec.md §9 open question
			if !calendar.CheckExpiration(anchor, leg.Expiration.Period, comp.Expiration) {
				return false
			}
		default:
			if !expirations.check(leg.Expiration.Key, comp.Expiration, calendar.Less) {
				return false
			}
		}
	}
	return true
}

func (t Template) checkMore(components []component.Component) ([]int, bool) {
	leg := t.Legs[0]
	for _, comp := range components {
		if !leg.matchesType(comp.Type) {
			return nil, false
		}
		if !leg.Ratio.Matches(comp.Ratio) {
			return nil, false
		}
	}
	return identity(len(components)), true
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// nextPermutation advances perm in place to its lexicographic successor,
// mirroring std::next_permutation, and reports whether a successor existed.
func nextPermutation(perm []int) bool {
	n := len(perm)
	i := n - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		perm[l], perm[r] = perm[r], perm[l]
	}
	return true
}
