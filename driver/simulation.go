package driver

import (
	"fmt"
	"log/slog"

	"github.com/grafestim/ergmee/pajekio"
	"github.com/grafestim/ergmee/simulate"
)

// simulationInterval is the number of sampler steps between recorded
// statistics snapshots, matching the original implementation's
// once-per-outer-sweep reporting cadence.
const simulationInterval = 1000

// RunSimulation loads cfgPath, drives theta forward for task taskNum
// through cfg.EEsteps*cfg.SamplerM sampler steps, and writes the running
// statistics snapshots to "<sim_net_file_prefix><taskNum>_stats.yaml".
// If cfg.OutputSimulatedNetwork is set, every snapshot's network is also
// written in Pajek format to "<sim_net_file_prefix><taskNum>_<iter>.txt",
// plus the final network to "<sim_net_file_prefix><taskNum>.txt".
func RunSimulation(cfgPath string, taskNum int, theta []float64) error {
	log := slog.With("task", taskNum)

	t, err := load(cfgPath, taskNum)
	if err != nil {
		return &TaskError{Task: taskNum, Err: err}
	}
	if len(theta) != len(t.reg.Specs) {
		return &TaskError{Task: taskNum, Err: fmt.Errorf("driver: theta has %d entries, registry has %d statistics", len(theta), len(t.reg.Specs))}
	}
	log.Info("simulation: network loaded", "nodes", t.g.NumNodes(), "arcs", t.g.NumArcs())

	prefix := fmt.Sprintf("%s%d", t.cfg.SimNetFilePrefix, taskNum)

	netPrefix := ""
	if t.cfg.OutputSimulatedNetwork {
		netPrefix = prefix
	}

	steps := int(t.cfg.EEsteps * t.cfg.SamplerM)
	snaps, err := simulate.Run(t.g, t.reg, t.smp, theta, steps, simulationInterval, netPrefix)
	if err != nil {
		log.Error("simulation failed", "err", err)
		return &TaskError{Task: taskNum, Err: err}
	}

	if err := simulate.WriteSnapshots(prefix, statNames(t.reg), snaps); err != nil {
		return &TaskError{Task: taskNum, Err: err}
	}

	if t.cfg.OutputSimulatedNetwork {
		for _, snap := range snaps {
			path := fmt.Sprintf("%s_%d.txt", prefix, snap.Iteration)
			if err := pajekio.WriteGraph(path, snap.Net); err != nil {
				return &TaskError{Task: taskNum, Err: err}
			}
		}
		if err := pajekio.WriteGraph(prefix+".txt", t.g); err != nil {
			return &TaskError{Task: taskNum, Err: err}
		}
	}

	log.Info("simulation complete", "snapshots", len(snaps))
	return nil
}
