// Package catalog interprets a declarative catalog document (an
// attribute-tagged tree, encoded as XML) into an ordered list of
// templates. Catalog order carries priority: the matcher tries templates
// in the order the loader appended them.
package catalog

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/meenmo/combinations/template"
)

// Catalog is the ordered, immutable list of templates produced by Load.
type Catalog struct {
	Templates []template.Template
}

// Load parses the catalog document at path. A malformed template entry
// (unknown cardinality character, missing required attribute) is skipped
// and logged rather than aborting the whole load, per spec.md §7. Load
// only returns an error for the document-level failures spec.md §6
// enumerates: empty path, missing file, unparseable document, or a
// document lacking a root combinations element.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %q: %w", path, err)
	}
	return parse(data)
}

// MustLoad is Load, but panics on error. It is intended for package-level
// presets and tests that embed a known-good catalog, mirroring the
// teacher's build-once preset-variable convention.
func MustLoad(path string) *Catalog {
	c, err := Load(path)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(data []byte) (*Catalog, error) {
	var doc xmlDocument
	decoder := xml.NewDecoder(bytes.NewReader(data))
	// The XMLName field's "combinations" tag makes Decode itself reject a
	// document whose root element is missing or named differently, folding
	// spec.md §6's "unparseable document" and "lacking a root combinations
	// element" failure cases into one error path.
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: parsing document: %w", err)
	}

	cat := &Catalog{}
	for _, entry := range doc.Combinations {
		tmpl, ok := buildTemplate(entry)
		if !ok {
			log.Printf("catalog: skipping malformed template %q", entry.Name)
			continue
		}
		if err := tmpl.Validate(); err != nil {
			log.Printf("catalog: skipping template %q: %v", entry.Name, err)
			continue
		}
		cat.Templates = append(cat.Templates, tmpl)
	}
	return cat, nil
}

// buildTemplate interprets one <combination> element. It returns ok=false
// for the malformed-entry cases spec.md §7 calls out as silently skipped:
// an unrecognized cardinality character, or a missing required attribute.
func buildTemplate(entry xmlCombination) (template.Template, bool) {
	kind, ok := parseCardinality(entry.Legs.Cardinality)
	if !ok {
		return template.Template{}, false
	}

	legs := make([]template.Leg, 0, len(entry.Legs.Leg))
	for _, xl := range entry.Legs.Leg {
		leg, ok := buildLeg(xl)
		if !ok {
			return template.Template{}, false
		}
		legs = append(legs, leg)
	}

	tmpl := template.Template{Name: entry.Name, Kind: kind, Legs: legs}
	if kind == template.More {
		minCount, err := strconv.Atoi(entry.Legs.MinCount)
		if err != nil || minCount < 1 {
			return template.Template{}, false
		}
		tmpl.MinCount = minCount
	}
	return tmpl, true
}

// parseCardinality dispatches on the second character of the cardinality
// attribute: 'o' -> More, 'i' -> Fixed, 'u' -> Multiple (spec.md §6).
func parseCardinality(attr string) (template.CardinalityKind, bool) {
	if len(attr) < 2 {
		return 0, false
	}
	switch attr[1] {
	case 'o':
		return template.More, true
	case 'i':
		return template.Fixed, true
	case 'u':
		return template.Multiple, true
	default:
		return 0, false
	}
}

func buildLeg(xl xmlLeg) (template.Leg, bool) {
	typ, ok := parseType(xl.Type)
	if !ok {
		return template.Leg{}, false
	}
	ratio, err := parseRatio(xl.Ratio)
	if err != nil {
		return template.Leg{}, false
	}
	return template.Leg{
		Type:       typ,
		Ratio:      ratio,
		StrikeKey:  parseStrikeKey(xl.Strike, xl.StrikeOffset),
		Expiration: parseExpiration(xl.Expiration, xl.ExpirationOffset),
	}, true
}
