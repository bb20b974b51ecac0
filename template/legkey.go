package template

// LegKeyKind discriminates the three LegKey shapes shared by the strike and
// expiration offset channels.
type LegKeyKind int

// The three ways a leg can constrain one offset channel: no constraint,
// membership in a named equality class, or an ordinal rank.
const (
	KeyFree LegKeyKind = iota
	KeySymbol
	KeyOffset
)

// LegKey is a tagged value used identically by the strike channel and the
// expiration channel: Free imposes no constraint, Symbol groups legs into
// an equality class, and Offset establishes a strict ordinal ranking among
// legs sharing the channel.
type LegKey struct {
	Kind   LegKeyKind
	Symbol rune // valid when Kind == KeySymbol
	Offset int  // valid when Kind == KeyOffset; signed, non-zero when parsed from a catalog
}

// Free is the LegKey sentinel meaning "no constraint on this channel".
var Free = LegKey{Kind: KeyFree}

// Symbol builds a Symbol-kind LegKey.
func Symbol(c rune) LegKey { return LegKey{Kind: KeySymbol, Symbol: c} }

// Offset builds an Offset-kind LegKey.
func Offset(k int) LegKey { return LegKey{Kind: KeyOffset, Offset: k} }
