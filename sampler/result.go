package sampler

import "github.com/grafestim/ergmee/digraph"

// Result is the outcome of running a Sampler for m proposal steps: the
// accumulated per-statistic totals over accepted add moves and accepted
// delete moves (used by Algorithm S / Algorithm EE to form dzA), the
// fraction of proposals accepted, and — for IFDSampler only — the
// accepted-delete count minus the accepted-add count (DzArc).
type Result struct {
	AddStats       []float64
	DelStats       []float64
	AcceptanceRate float64
	DzArc          float64
}

// Sampler draws m Metropolis-Hastings proposals against g under the
// current parameter vector theta. If performMove is true, accepted moves
// are actually applied to g (Algorithm EE and simulation mode); if false,
// g is left untouched and only the statistics accumulate (Algorithm S).
type Sampler interface {
	Run(g *digraph.Graph, theta []float64, m int, performMove bool) (Result, error)
}
