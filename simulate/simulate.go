package simulate

import (
	"fmt"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/sampler"
)

// NetworkSnapshot records g's sufficient statistics after iteration
// Iteration steps of simulation, plus — when the caller asked for it by
// passing a non-empty netPrefix to Run — the network itself at that
// point, as an independent clone.
type NetworkSnapshot struct {
	Iteration int             `yaml:"iteration"`
	Stats     []float64       `yaml:"stats"`
	Net       *digraph.Graph  `yaml:"-"`
}

// Run performs steps Metropolis-Hastings moves against g under theta,
// actually applying accepted moves (performMove=true), and records a
// NetworkSnapshot of g's sufficient statistics every interval steps
// (and once more at the end if steps is not a multiple of interval).
// netPrefix is not used to write anything itself; a non-empty value
// signals that the caller will want each snapshot's network (e.g. to
// write a per-snapshot Pajek file under that prefix), so Run pays the
// cost of cloning g into NetworkSnapshot.Net — callers that only need
// the running statistics pass "" and skip that cost entirely. g is
// mutated in place; the caller owns it and is responsible for writing
// its final state out afterward (e.g. via pajekio.WriteGraph).
func Run(g *digraph.Graph, reg *changestat.Registry, smp sampler.Sampler, theta []float64, steps, interval int, netPrefix string) ([]NetworkSnapshot, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("simulate: interval must be positive, got %d", interval)
	}
	if len(theta) != len(reg.Specs) {
		return nil, fmt.Errorf("simulate: theta has %d entries, want %d", len(theta), len(reg.Specs))
	}

	var snapshots []NetworkSnapshot
	done := 0
	for done < steps {
		block := interval
		if remaining := steps - done; block > remaining {
			block = remaining
		}
		if _, err := smp.Run(g, theta, block, true); err != nil {
			return snapshots, err
		}
		done += block

		snap := NetworkSnapshot{
			Iteration: done,
			Stats:     changestat.EmptyGraphStats(g, reg),
		}
		if netPrefix != "" {
			snap.Net = g.Clone()
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}
