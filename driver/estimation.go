package driver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/grafestim/ergmee/ee"
	"github.com/grafestim/ergmee/pajekio"
	"github.com/grafestim/ergmee/trajectory"
)

// RunEstimation loads cfgPath, fits a parameter vector for task taskNum
// against the resulting network, and writes the theta and dzA
// trajectories to "<theta_file_prefix>_<taskNum>.txt" and
// "<dzA_file_prefix>_<taskNum>.txt". If cfg.OutputSimulatedNetwork is
// set, the network state left behind by the sampler's last accepted
// moves is also written in Pajek format to
// "<sim_net_file_prefix><taskNum>.txt". Returns a *TaskError on any
// failure.
func RunEstimation(cfgPath string, taskNum int) error {
	log := slog.With("task", taskNum)

	t, err := load(cfgPath, taskNum)
	if err != nil {
		return &TaskError{Task: taskNum, Err: err}
	}
	log.Info("estimation: network loaded", "nodes", t.g.NumNodes(), "arcs", t.g.NumArcs())

	names := statNames(t.reg)
	thetaW, err := trajectory.NewWriter(fmt.Sprintf("%s_%d.txt", t.cfg.ThetaFilePrefix, taskNum), names)
	if err != nil {
		return &TaskError{Task: taskNum, Err: err}
	}
	defer thetaW.Close()

	dzaW, err := trajectory.NewWriter(fmt.Sprintf("%s_%d.txt", t.cfg.DzAFilePrefix, taskNum), names)
	if err != nil {
		return &TaskError{Task: taskNum, Err: err}
	}
	defer dzaW.Close()

	theta, err := ee.Estimate(t.g, t.reg, t.smp, eeConfigOf(t.cfg), thetaW, dzaW)
	if err != nil {
		var degenErr *ee.ErrDegenerate
		if errors.As(err, &degenErr) {
			log.Warn("estimation stopped: degenerate region detected", "err", err)
		} else {
			log.Error("estimation failed", "err", err)
		}
		return &TaskError{Task: taskNum, Err: err}
	}

	log.Info("estimation complete", "theta", theta)

	if t.cfg.OutputSimulatedNetwork {
		path := fmt.Sprintf("%s%d.txt", t.cfg.SimNetFilePrefix, taskNum)
		if err := pajekio.WriteGraph(path, t.g); err != nil {
			return &TaskError{Task: taskNum, Err: err}
		}
	}

	return nil
}
