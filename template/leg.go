package template

import (
	"github.com/meenmo/combinations/calendar"
	"github.com/meenmo/combinations/component"
)

// ExpirationKind discriminates whether a leg's expiration channel is keyed
// like the strike channel, or anchored to a calendar period relative to the
// group's offset-0 leg.
type ExpirationKind int

// The two shapes an expiration constraint can take.
const (
	ExpirationKey ExpirationKind = iota
	ExpirationPeriod
)

// ExpirationConstraint is either a LegKey (handled identically to the
// strike channel) or a PeriodOffset anchored at the group's offset-0 leg.
type ExpirationConstraint struct {
	Kind   ExpirationKind
	Key    LegKey          // valid when Kind == ExpirationKey
	Period calendar.Period // valid when Kind == ExpirationPeriod
}

// ExpirationFromKey wraps a LegKey as an expiration constraint.
func ExpirationFromKey(key LegKey) ExpirationConstraint {
	return ExpirationConstraint{Kind: ExpirationKey, Key: key}
}

// ExpirationFromPeriod wraps a calendar.Period as an expiration constraint.
func ExpirationFromPeriod(period calendar.Period) ExpirationConstraint {
	return ExpirationConstraint{Kind: ExpirationPeriod, Period: period}
}

// Leg is one slot in a template's recipe.
type Leg struct {
	Type       component.InstrumentType
	Ratio      LegRatio
	StrikeKey  LegKey
	Expiration ExpirationConstraint
}

// matchesType reports whether a component of typ satisfies this leg's
// instrument type, with the Option leg abstracting over Call and Put.
func (l Leg) matchesType(typ component.InstrumentType) bool {
	if l.Type == component.Option {
		return typ == component.Call || typ == component.Put
	}
	return l.Type == typ
}
