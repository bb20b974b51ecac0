// Package combinations classifies an ordered sequence of financial
// instrument components as one named strategy template drawn from a
// loaded catalog, or the sentinel "Unclassified".
//
// An Engine is build-once / query-many: Load populates it from a catalog
// document, after which it is immutable and safe for concurrent Classify
// calls from multiple goroutines. No internal locks are required because
// nothing under a loaded Engine is ever mutated post-load.
package combinations

import (
	"github.com/meenmo/combinations/catalog"
	"github.com/meenmo/combinations/component"
)

// Unclassified is returned by Classify when no template in the catalog
// matches the supplied components.
const Unclassified = "Unclassified"

// Engine holds one loaded catalog. The zero value is a valid, empty
// Engine: Classify against it always returns Unclassified.
type Engine struct {
	catalog *catalog.Catalog
}

// New returns an empty Engine. Use Load to populate it.
func New() *Engine {
	return &Engine{}
}

// Load populates e from the catalog document at path, returning false on
// empty path, missing file, unparseable document, or a document lacking a
// root combinations element. On failure e is left empty.
func (e *Engine) Load(path string) bool {
	cat, err := catalog.Load(path)
	if err != nil {
		e.catalog = nil
		return false
	}
	e.catalog = cat
	return true
}

// Classify evaluates components against every template in catalog order,
// returning the first match's name and 1-based role vector. It returns
// (Unclassified, nil) if the engine is empty or no template matches.
func (e *Engine) Classify(components []component.Component) (name string, roles []int) {
	if e.catalog == nil {
		return Unclassified, nil
	}
	for _, tmpl := range e.catalog.Templates {
		perm, ok := tmpl.Check(components)
		if !ok {
			continue
		}
		return tmpl.Name, rolesFromPermutation(perm)
	}
	return Unclassified, nil
}

// rolesFromPermutation inverts a leg-order -> input-index permutation into
// the 1-based role vector: for i in [0, n), roles[perm[i]] = i + 1.
func rolesFromPermutation(perm []int) []int {
	roles := make([]int, len(perm))
	for i, p := range perm {
		roles[p] = i + 1
	}
	return roles
}
