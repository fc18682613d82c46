package propose

// Regime selects which node pairs are eligible for toggling.
type Regime int

const (
	// RegimePlain allows any dyad in the graph to be toggled.
	RegimePlain Regime = iota
	// RegimeSnowball restricts moves to dyads between inner (non-final-
	// wave) nodes, for conditional estimation on a snowball sample.
	RegimeSnowball
	// RegimeCitation restricts moves to arcs sent by final-citation-term
	// nodes, for citation ERGM (cERGM) conditional estimation.
	RegimeCitation
)

// Constraints bundles the regime with the two structural constraints
// that interact with it: forbidding reciprocated arcs and allowing
// self-loops. Validated once at config load time; the hot loop trusts
// these flags without re-checking mutual exclusions.
type Constraints struct {
	Regime            Regime
	ForbidReciprocity bool
	AllowLoops        bool
}
