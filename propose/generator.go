package propose

import (
	"math/rand/v2"

	"github.com/grafestim/ergmee/digraph"
)

// maxRetries bounds the number of rejection-sampling attempts a Generator
// makes before giving up on a dense or otherwise exhausted graph.
const maxRetries = 1000

// Generator draws candidate add/delete moves for a single graph, honouring
// the attached Constraints. A Generator holds no state beyond its RNG and
// owns no graph mutation; it only reads g to pick candidates.
type Generator struct {
	rng *rand.Rand
	g   *digraph.Graph
	c   Constraints
}

// New constructs a Generator drawing from rng against g under c.
func New(rng *rand.Rand, g *digraph.Graph, c Constraints) *Generator {
	return &Generator{rng: rng, g: g, c: c}
}

// Rand returns the Generator's underlying RNG, so samplers can make
// direction and acceptance decisions from the same single-stream source
// instead of constructing a second RNG per task.
func (gen *Generator) Rand() *rand.Rand { return gen.rng }

// ProposeAdd draws a candidate dyad (i,j) not currently an arc, eligible
// under the Generator's Constraints. ok is false if no valid candidate
// was found within maxRetries attempts.
func (gen *Generator) ProposeAdd() (i, j int, ok bool) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		i, j, eligible := gen.sampleCandidatePair()
		if !eligible {
			continue
		}
		if gen.g.IsArc(i, j) {
			continue
		}
		if gen.c.ForbidReciprocity && gen.g.IsArc(j, i) {
			continue
		}
		return i, j, true
	}
	return 0, 0, false
}

// ProposeDelete draws a candidate existing arc (i,j) eligible under the
// Generator's Constraints, along with its index in the relevant flat arc
// list (allarcs, or the regime-specific restricted index). ok is false if
// no eligible arc exists at all.
func (gen *Generator) ProposeDelete() (i, j, arcIndex int, ok bool) {
	switch gen.c.Regime {
	case RegimeSnowball:
		n := gen.g.NumInnerArcs()
		if n == 0 {
			return 0, 0, 0, false
		}
		for attempt := 0; attempt < maxRetries; attempt++ {
			k := gen.rng.IntN(n)
			i, j = gen.g.InnerArcAt(k)
			if gen.isLastPrevWaveTie(i, j) {
				continue
			}
			return i, j, k, true
		}
		return 0, 0, 0, false
	case RegimeCitation:
		n := gen.g.NumMaxTermSenderArcs()
		if n == 0 {
			return 0, 0, 0, false
		}
		k := gen.rng.IntN(n)
		i, j = gen.g.MaxTermSenderArcAt(k)
		return i, j, k, true
	default:
		n := gen.g.NumArcs()
		if n == 0 {
			return 0, 0, 0, false
		}
		k := gen.rng.IntN(n)
		i, j = gen.g.ArcAt(k)
		return i, j, k, true
	}
}

// isLastPrevWaveTie reports whether arc i->j is the only tie linking one
// of its endpoints to that endpoint's previous wave, in which case deleting
// it would orphan a recruited node from its recruiter wave.
func (gen *Generator) isLastPrevWaveTie(i, j int) bool {
	if gen.g.Zone(j) == gen.g.Zone(i)-1 && gen.g.PrevWaveDegree(i) == 1 {
		return true
	}
	if gen.g.Zone(i) == gen.g.Zone(j)-1 && gen.g.PrevWaveDegree(j) == 1 {
		return true
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sampleCandidatePair draws one raw (i,j) pair according to the regime,
// without checking arc existence or reciprocity; eligible reports whether
// the pair satisfies the regime's structural domain (e.g. both endpoints
// inner, for snowball) and the loop constraint.
func (gen *Generator) sampleCandidatePair() (i, j int, eligible bool) {
	n := gen.g.NumNodes()

	switch gen.c.Regime {
	case RegimeSnowball:
		inner := gen.g.InnerNodes()
		if len(inner) == 0 {
			return 0, 0, false
		}
		i = inner[gen.rng.IntN(len(inner))]
		j = inner[gen.rng.IntN(len(inner))]
		if abs(gen.g.Zone(i)-gen.g.Zone(j)) > 1 {
			return i, j, false
		}
	case RegimeCitation:
		senders := gen.g.MaxTermNodes()
		if len(senders) == 0 {
			return 0, 0, false
		}
		i = senders[gen.rng.IntN(len(senders))]
		j = gen.rng.IntN(n)
	default:
		i = gen.rng.IntN(n)
		j = gen.rng.IntN(n)
	}

	if i == j && !gen.c.AllowLoops {
		return i, j, false
	}
	return i, j, true
}
