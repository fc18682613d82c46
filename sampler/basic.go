package sampler

import (
	"math"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/propose"
)

// BasicSampler is the plain Metropolis-Hastings kernel: each step flips a
// fair coin to decide add-or-delete, then draws a candidate dyad from its
// Generator under that direction's own distribution (ProposeAdd's uniform-
// over-absent-dyads, or ProposeDelete's uniform-over-live-arcs), accepting
// with the standard exponential-family ratio.
type BasicSampler struct {
	gen *propose.Generator
	reg *changestat.Registry
}

// NewBasicSampler constructs a BasicSampler drawing candidates from gen
// and scoring them against reg.
func NewBasicSampler(gen *propose.Generator, reg *changestat.Registry) *BasicSampler {
	return &BasicSampler{gen: gen, reg: reg}
}

// Run executes m Metropolis-Hastings steps against g under theta. See
// Sampler for the performMove contract.
func (s *BasicSampler) Run(g *digraph.Graph, theta []float64, m int, performMove bool) (Result, error) {
	addStats := make([]float64, len(s.reg.Specs))
	delStats := make([]float64, len(s.reg.Specs))
	accepted := 0
	rng := s.gen.Rand()
	scratch := make([]float64, len(s.reg.Specs))

	for step := 0; step < m; step++ {
		isDelete := rng.Float64() < 0.5

		var i, j int
		var ok bool
		for attempt := 0; attempt < 2 && !ok; attempt++ {
			if attempt == 1 {
				// The chosen direction has no candidate: switch direction.
				isDelete = !isDelete
			}
			if isDelete {
				i, j, _, ok = s.gen.ProposeDelete()
			} else {
				i, j, ok = s.gen.ProposeAdd()
			}
		}
		if !ok {
			return Result{}, ErrProposalExhausted
		}

		logRatio := changestat.CalcChangeStats(g, i, j, s.reg, theta, isDelete, scratch)
		if isDelete {
			logRatio = -logRatio
		}

		if logRatio < 0 && rng.Float64() >= math.Exp(logRatio) {
			continue
		}
		accepted++

		dst := addStats
		if isDelete {
			dst = delStats
		}
		for l, v := range scratch {
			dst[l] += v
		}

		if performMove {
			if isDelete {
				_ = g.RemoveArc(i, j)
			} else {
				_ = g.InsertArc(i, j)
			}
		}
	}

	return Result{
		AddStats:       addStats,
		DelStats:       delStats,
		AcceptanceRate: float64(accepted) / float64(m),
	}, nil
}
