// Package component defines the input atom the matcher classifies against
// a catalog of templates, plus the external line-format parser spec.md
// scopes as an out-of-core collaborator, implemented here behind the
// interface the matcher consumes.
package component

import (
	"strconv"
	"strings"

	"github.com/meenmo/combinations/calendar"
)

// InstrumentType is the closed set of instrument kinds a component can
// carry. Call and Put are leaves of the abstract Option family: a leg typed
// Option matches a component typed either Call or Put.
type InstrumentType byte

// The five recognized instrument types plus the Unknown sentinel used for
// malformed input.
const (
	Call       InstrumentType = 'C'
	Future     InstrumentType = 'F'
	Option     InstrumentType = 'O'
	Put        InstrumentType = 'P'
	Underlying InstrumentType = 'U'
	Unknown    InstrumentType = 0
)

// Component is one instrument in an input trade. It is immutable once
// constructed.
type Component struct {
	Type       InstrumentType
	Ratio      float64
	Strike     float64
	Expiration calendar.Date
}

// New constructs a Component directly from its fields.
func New(typ InstrumentType, ratio, strike float64, expiration calendar.Date) Component {
	return Component{Type: typ, Ratio: ratio, Strike: strike, Expiration: expiration}
}

// hasStrike reports whether the instrument type carries a strike field in
// the line format: Call, Option, and Put do; Future and Underlying don't.
func hasStrike(typ InstrumentType) bool {
	return typ == Call || typ == Option || typ == Put
}

// ParseLine parses one whitespace-separated component line:
//
//	<T> <ratio> [<strike>] <YYYY-MM-DD>
//
// where T is one of C, F, O, P, U. Malformed lines yield a Component with
// Type set to Unknown; an Unknown component is specified to never match a
// typed leg, so the rest of its fields are left at their zero values.
func ParseLine(line string) Component {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Component{Type: Unknown}
	}

	typ := parseType(fields[0])
	if typ == Unknown {
		return Component{Type: Unknown}
	}

	ratio, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Component{Type: Unknown}
	}

	rest := fields[2:]
	var strike float64
	if hasStrike(typ) {
		if len(rest) < 2 {
			return Component{Type: Unknown}
		}
		strike, err = strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return Component{Type: Unknown}
		}
		rest = rest[1:]
	}
	if len(rest) < 1 {
		return Component{Type: Unknown}
	}

	expiration, ok := parseDate(rest[0])
	if !ok {
		return Component{Type: Unknown}
	}

	return Component{Type: typ, Ratio: ratio, Strike: strike, Expiration: expiration}
}

func parseType(token string) InstrumentType {
	if len(token) != 1 {
		return Unknown
	}
	switch InstrumentType(token[0]) {
	case Call, Future, Option, Put, Underlying:
		return InstrumentType(token[0])
	default:
		return Unknown
	}
}

func parseDate(token string) (calendar.Date, bool) {
	parts := strings.Split(token, "-")
	if len(parts) != 3 {
		return calendar.Date{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return calendar.Date{}, false
	}
	return calendar.Date{Year: year, Month: month, Day: day}, true
}
