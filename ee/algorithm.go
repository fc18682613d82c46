package ee

import (
	"math"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/sampler"
	"github.com/grafestim/ergmee/trajectory"
)

// signOf returns -1 or 1 matching the sign of v; ties (v==0) count as
// positive, matching the original implementation's `(v < 0 ? -1 : 1)`
// idiom used throughout equilibriumExpectation.c.
func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// AlgorithmS runs a short pilot phase to establish, for every parameter,
// an initial step-size scale D0 and its implied mean step Dmean. Theta
// starts at zero and takes one step per iteration; the graph is not
// modified. It returns the resulting theta vector and dmean, or an
// *ErrDegenerate if any Dmean entry is non-finite.
func AlgorithmS(g *digraph.Graph, reg *changestat.Registry, smp sampler.Sampler, cfg Config, traj *trajectory.Writer) (theta, dmean []float64, err error) {
	n := len(reg.Specs)
	theta = make([]float64, n)
	d0 := make([]float64, n)
	dmean = make([]float64, n)
	addStats := make([]float64, n)
	delStats := make([]float64, n)

	for iter := uint(0); iter < cfg.M1Steps; iter++ {
		res, runErr := smp.Run(g, theta, int(cfg.SamplerM), false)
		if runErr != nil {
			return nil, nil, runErr
		}
		copy(addStats, res.AddStats)
		copy(delStats, res.DelStats)

		dzA := make([]float64, n)
		for l := 0; l < n; l++ {
			dzA[l] = delStats[l] - addStats[l]
			d0[l] += dzA[l] * dzA[l]

			var thetaStep float64
			sumSq := addStats[l] + delStats[l]
			if sumSq != 0 {
				da := cfg.ACA_S / (sumSq * sumSq)
				thetaStep = signOf(dzA[l]) * da * dzA[l] * dzA[l]
			}
			theta[l] += thetaStep
		}

		if traj != nil {
			if err := traj.WriteRow(int(iter), theta); err != nil {
				return nil, nil, err
			}
		}
	}

	samplerM := float64(cfg.SamplerM)
	for l := 0; l < n; l++ {
		dmean[l] = samplerM / d0[l]
		if math.IsInf(dmean[l], 0) || math.IsNaN(dmean[l]) {
			return theta, dmean, &ErrDegenerate{ParamIndex: l}
		}
	}

	return theta, dmean, nil
}

// AlgorithmEE runs the main stochastic-approximation loop, mutating theta
// in place over cfg.Mouter outer iterations of cfg.Minner inner sampler
// batches each. thetaW and dzaW, if non-nil, receive one row per outer
// iteration (or, with cfg.OutputAllSteps, one row per inner iteration).
func AlgorithmEE(g *digraph.Graph, reg *changestat.Registry, smp sampler.Sampler, cfg Config, theta, d0 []float64, thetaW, dzaW *trajectory.Writer) error {
	n := len(reg.Specs)
	thetaHistory := make([][]float64, 0, cfg.Minner)

	for outer := uint(0); outer < cfg.Mouter; outer++ {
		dzA := make([]float64, n)

		for inner := uint(0); inner < cfg.Minner; inner++ {
			res, err := smp.Run(g, theta, int(cfg.SamplerM), true)
			if err != nil {
				return err
			}
			for l := 0; l < n; l++ {
				dzA[l] += res.AddStats[l] - res.DelStats[l]
			}

			for l := 0; l < n; l++ {
				var thetaStep float64
				if cfg.UseBorisenko {
					mag := math.Abs(theta[l])
					if mag < cfg.MinTheta {
						mag = cfg.MinTheta
					}
					thetaStep = signOf(-dzA[l]) * cfg.LearningRate * mag
				} else {
					thetaStep = signOf(-dzA[l]) * d0[l] * cfg.ACA_EE * dzA[l] * dzA[l]
				}
				theta[l] += thetaStep
			}

			if cfg.OutputAllSteps {
				if err := writeRow(thetaW, int(outer*cfg.Minner+inner), theta); err != nil {
					return err
				}
				if err := writeRow(dzaW, int(outer*cfg.Minner+inner), dzA); err != nil {
					return err
				}
			}

			thetaHistory = append(thetaHistory, append([]float64(nil), theta...))
		}

		if !cfg.OutputAllSteps {
			if err := writeRow(thetaW, int(outer), theta); err != nil {
				return err
			}
			if err := writeRow(dzaW, int(outer), dzA); err != nil {
				return err
			}
		}

		if !cfg.UseBorisenko {
			rescaleD0(d0, thetaHistory, cfg)
		}
		thetaHistory = thetaHistory[:0]
	}

	return nil
}

func writeRow(w *trajectory.Writer, iter int, row []float64) error {
	if w == nil {
		return nil
	}
	return w.WriteRow(iter, row)
}

// rescaleD0 adjusts each D0[l] between outer iterations based on the
// coefficient of variation of theta[l] over the last Minner values,
// clamping a near-zero mean to MinThetaMean before dividing, and skipping
// the rescale entirely when the standard deviation is too small to be
// meaningful (ThetaSDThreshold).
func rescaleD0(d0 []float64, history [][]float64, cfg Config) {
	if len(history) == 0 {
		return
	}
	n := len(d0)
	for l := 0; l < n; l++ {
		mean, sd := meanStdDevColumn(history, l)
		absMean := math.Abs(mean)
		if absMean < cfg.MinThetaMean {
			absMean = cfg.MinThetaMean
		}
		if sd > cfg.ThetaSDThreshold {
			d0[l] *= math.Sqrt(cfg.CompC / (sd / absMean))
		}
	}
}
