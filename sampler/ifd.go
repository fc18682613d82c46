package sampler

import (
	"math"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/propose"
)

// imbalanceWarnThreshold is the fraction |Ndel-Nadd|/(Ndel+Nadd) above
// which a persistent add/delete imbalance suggests the target density is
// poorly matched to the graph's structural constraints.
const imbalanceWarnThreshold = 0.8

// IFDState holds the per-task mutable state an IFDSampler needs across
// calls to Run: the auxiliary density-bias parameter, which direction was
// last attempted (replacing the original implementation's function-
// static alternation flag), and diagnostic counters. Callers own exactly
// one IFDState per task and thread it through every Run call themselves.
type IFDState struct {
	AuxParam        float64
	LastWasDelete   bool
	ForcedAddCount  int
	imbalanceWarned bool
}

// IFDSampler is the Improved Fixed Density sampler: it alternates add and
// delete proposals and adjusts AuxParam after each batch of steps to pull
// the graph's long-run density toward a fixed point, without requiring an
// explicit density parameter in the fitted model.
type IFDSampler struct {
	gen *propose.Generator
	reg *changestat.Registry
	k   float64
}

// NewIFDSampler constructs an IFDSampler. It returns ErrArcStatConflict if
// reg already contains a structural "Arc" statistic, since IFD's own
// auxiliary parameter already accounts for that effect.
func NewIFDSampler(gen *propose.Generator, reg *changestat.Registry, ifdK float64) (*IFDSampler, error) {
	for _, spec := range reg.Specs {
		if spec.Kind == changestat.Structural && spec.Name == "Arc" {
			return nil, ErrArcStatConflict
		}
	}
	return &IFDSampler{gen: gen, reg: reg, k: ifdK}, nil
}

// Run executes m IFD steps against g under theta, mutating state in
// place. See Sampler for the performMove contract; Result.DzArc carries
// the number of accepted deletes minus the number of accepted adds in
// this batch.
func (s *IFDSampler) Run(g *digraph.Graph, theta []float64, m int, performMove bool, state *IFDState) (Result, error) {
	addStats := make([]float64, len(s.reg.Specs))
	delStats := make([]float64, len(s.reg.Specs))
	scratch := make([]float64, len(s.reg.Specs))
	rng := s.gen.Rand()

	var nAdd, nDel, accepted int

	for step := 0; step < m; step++ {
		isDelete := !state.LastWasDelete

		i, j, _, ok := s.proposeDirection(isDelete)
		if !ok {
			isDelete = !isDelete
			i, j, _, ok = s.proposeDirection(isDelete)
			if !ok {
				return Result{}, ErrProposalExhausted
			}
			if !isDelete {
				state.ForcedAddCount++
			}
		}
		state.LastWasDelete = isDelete

		logRatio := changestat.CalcChangeStats(g, i, j, s.reg, theta, isDelete, scratch)
		if isDelete {
			logRatio = -logRatio - state.AuxParam
		} else {
			logRatio += state.AuxParam
		}

		if logRatio < 0 && rng.Float64() >= math.Exp(logRatio) {
			continue
		}
		accepted++

		dst := addStats
		if isDelete {
			dst = delStats
			nDel++
		} else {
			nAdd++
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

	s.updateAuxParam(state, nAdd, nDel)
	dz := float64(nDel - nAdd)

	return Result{
		AddStats:       addStats,
		DelStats:       delStats,
		AcceptanceRate: float64(accepted) / float64(m),
		DzArc:          dz,
	}, nil
}

func (s *IFDSampler) proposeDirection(isDelete bool) (i, j, arcIndex int, ok bool) {
	if isDelete {
		return s.gen.ProposeDelete()
	}
	i, j, ok = s.gen.ProposeAdd()
	return i, j, -1, ok
}

// updateAuxParam applies the IFD fixed-point update, pulling AuxParam in
// the direction that corrects an add/delete imbalance observed over the
// batch, with magnitude proportional to the square of the imbalance
// fraction. It writes no log itself; it sets imbalanceWarned, which
// Imbalanced reports, when the imbalance is severe enough to suggest the
// sampler cannot reach the target density under the current constraints.
func (s *IFDSampler) updateAuxParam(state *IFDState, nAdd, nDel int) {
	total := nAdd + nDel
	if total == 0 {
		return
	}
	diff := float64(nDel - nAdd)
	frac := diff / float64(total)
	step := s.k * frac * frac
	if diff > 0 {
		// Deletes outnumber adds: lower V to push the chain back toward adds.
		step = -step
	}
	// Adds outnumber deletes (diff < 0): raise V to push the chain toward
	// deletes.
	state.AuxParam += step

	if math.Abs(frac) > imbalanceWarnThreshold {
		state.imbalanceWarned = true
	}
}

// Imbalanced reports whether any Run call on this state so far has
// observed an add/delete imbalance severe enough to warrant a
// caller-visible warning; once set, the flag stays set.
func (state *IFDState) Imbalanced() bool { return state.imbalanceWarned }

// IFDTaskSampler adapts an IFDSampler to the Sampler interface by owning
// exactly one IFDState, threading it through every Run call itself. One
// estimation or simulation task constructs exactly one IFDTaskSampler and
// keeps it for the task's lifetime.
type IFDTaskSampler struct {
	s     *IFDSampler
	State *IFDState
}

// NewIFDTaskSampler wraps s with a fresh, zero-valued IFDState.
func NewIFDTaskSampler(s *IFDSampler) *IFDTaskSampler {
	return &IFDTaskSampler{s: s, State: &IFDState{}}
}

// Run implements Sampler by delegating to the wrapped IFDSampler with
// this task's IFDState.
func (t *IFDTaskSampler) Run(g *digraph.Graph, theta []float64, m int, performMove bool) (Result, error) {
	return t.s.Run(g, theta, m, performMove, t.State)
}
