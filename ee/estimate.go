package ee

import (
	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/sampler"
	"github.com/grafestim/ergmee/trajectory"
)

// Estimate runs Algorithm S followed by Algorithm EE and returns the
// fitted parameter vector. If Algorithm S detects degeneracy it returns
// the theta Algorithm S reached alongside an *ErrDegenerate, matching
// ee_estimate's non-zero return convention: the caller (package driver)
// is expected to log and abort the task rather than proceed to Algorithm
// EE with meaningless step sizes.
func Estimate(g *digraph.Graph, reg *changestat.Registry, smp sampler.Sampler, cfg Config, thetaW, dzaW *trajectory.Writer) (theta []float64, err error) {
	theta, d0, err := AlgorithmS(g, reg, smp, cfg, nil)
	if err != nil {
		return theta, err
	}

	if err := AlgorithmEE(g, reg, smp, cfg, theta, d0, thetaW, dzaW); err != nil {
		return theta, err
	}

	return theta, nil
}
