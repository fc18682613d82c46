package sampler

import (
	"math"

	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/propose"
)

// ArcCorrection computes log((numDyads-numArcs)/(numArcs+1)), a
// reporting-only correction relating the auxiliary parameter to an
// implied density, restricted to whichever dyad population the active
// regime conditions on. It plays no part in the sampler's own acceptance
// computation, and the trajectory files do not include it.
func ArcCorrection(g *digraph.Graph, c propose.Constraints) float64 {
	numDyads, numArcs := dyadPopulation(g, c)
	if numArcs < 0 {
		numArcs = 0
	}
	return math.Log((numDyads - float64(numArcs)) / float64(numArcs+1))
}

func dyadPopulation(g *digraph.Graph, c propose.Constraints) (numDyads float64, numArcs int) {
	switch c.Regime {
	case propose.RegimeSnowball:
		n := float64(len(g.InnerNodes()))
		d := orderedDyads(n, c.AllowLoops)
		if c.ForbidReciprocity {
			d /= 2
		}
		return d, g.NumInnerArcs()
	case propose.RegimeCitation:
		senders := float64(len(g.MaxTermNodes()))
		n := float64(g.NumNodes())
		return senders * (n - 1) / 2, g.NumMaxTermSenderArcs()
	default:
		n := float64(g.NumNodes())
		d := orderedDyads(n, c.AllowLoops)
		if c.ForbidReciprocity || !g.IsDirected() {
			d /= 2
		}
		return d, g.NumArcs()
	}
}

func orderedDyads(n float64, allowLoops bool) float64 {
	if allowLoops {
		return n * n
	}
	return n * (n - 1)
}
