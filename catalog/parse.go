package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meenmo/combinations/calendar"
	"github.com/meenmo/combinations/component"
	"github.com/meenmo/combinations/template"
)

// parseType maps the catalog's single-character type attribute to an
// InstrumentType. An empty or unrecognized attribute is reported as an
// error by the caller, which skips the owning leg's template.
func parseType(attr string) (component.InstrumentType, bool) {
	if len(attr) != 1 {
		return component.Unknown, false
	}
	switch component.InstrumentType(attr[0]) {
	case component.Call, component.Future, component.Option, component.Put, component.Underlying:
		return component.InstrumentType(attr[0]), true
	default:
		return component.Unknown, false
	}
}

// parseRatio parses the leg ratio attribute: a lone "+" or "-" yields a
// SignOnly LegRatio, anything else is parsed as a decimal Exact value.
func parseRatio(attr string) (template.LegRatio, error) {
	switch attr {
	case "+":
		return template.LegRatio{Kind: template.RatioSignOnly, Sign: true}, nil
	case "-":
		return template.LegRatio{Kind: template.RatioSignOnly, Sign: false}, nil
	default:
		v, err := strconv.ParseFloat(attr, 64)
		if err != nil {
			return template.LegRatio{}, fmt.Errorf("invalid ratio %q: %w", attr, err)
		}
		return template.LegRatio{Kind: template.RatioExact, Exact: v}, nil
	}
}

// isOffsetRun reports whether s consists of one or more of the same sign
// character ('+' or '-').
func isOffsetRun(s string) bool {
	if s == "" {
		return false
	}
	sign := s[0]
	if sign != '+' && sign != '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != sign {
			return false
		}
	}
	return true
}

// parseOffsetRun parses a run of '+' or '-' characters into a signed
// ordinal: the magnitude is the run length, the sign gives direction.
func parseOffsetRun(s string) int {
	n := len(s)
	if s[0] == '-' {
		return -n
	}
	return n
}

// parseStrikeKey parses the strike channel attributes. Unknown or missing
// attributes degrade to Free, per spec.md §6/§7; exactly one of strike /
// strike_offset is expected to be set for strike-bearing legs.
func parseStrikeKey(strike, strikeOffset string) template.LegKey {
	switch {
	case strikeOffset != "" && isOffsetRun(strikeOffset):
		return template.Offset(parseOffsetRun(strikeOffset))
	case strike != "":
		return template.Symbol(rune(strike[0]))
	default:
		return template.Free
	}
}

// parseExpiration parses the expiration channel attributes, which may be a
// LegKey (a symbol, or a run of signs parsed as an Offset, like strike) or a
// PeriodOffset (a decimal amount followed by a unit character).
func parseExpiration(expiration, expirationOffset string) template.ExpirationConstraint {
	if expiration != "" {
		return template.ExpirationFromKey(template.Symbol(rune(expiration[0])))
	}
	if expirationOffset == "" {
		return template.ExpirationFromKey(template.Free)
	}
	if isOffsetRun(expirationOffset) {
		return template.ExpirationFromKey(template.Offset(parseOffsetRun(expirationOffset)))
	}
	if period, ok := parsePeriodOffset(expirationOffset); ok {
		return template.ExpirationFromPeriod(period)
	}
	return template.ExpirationFromKey(template.Free)
}

// parsePeriodOffset parses a decimal amount followed by a unit character in
// {y, q, m, d}. A zero amount is promoted to 1.
func parsePeriodOffset(s string) (calendar.Period, bool) {
	if len(s) < 2 {
		return calendar.Period{}, false
	}
	unitChar := s[len(s)-1]
	amountStr := s[:len(s)-1]

	var unit calendar.PeriodUnit
	switch unitChar {
	case 'y':
		unit = calendar.Year
	case 'q':
		unit = calendar.Quarter
	case 'm':
		unit = calendar.Month
	case 'd':
		unit = calendar.Day
	default:
		return calendar.Period{}, false
	}

	amount, err := strconv.Atoi(strings.TrimSpace(amountStr))
	if err != nil {
		return calendar.Period{}, false
	}
	if amount == 0 {
		amount = 1
	}
	return calendar.Period{Unit: unit, Amount: amount}, true
}
