package driver

import (
	"fmt"
	"math/rand/v2"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/config"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/ee"
	"github.com/grafestim/ergmee/pajekio"
	"github.com/grafestim/ergmee/propose"
	"github.com/grafestim/ergmee/sampler"
)

// masterSeed anchors every task's RNG stream: task taskNum seeds from
// masterSeed*31+taskNum, so distinct tasks run from one config never
// share a stream while remaining fully reproducible.
const masterSeed uint64 = 0x5EED

// task bundles everything one estimation or simulation run needs after
// config load and graph assembly.
type task struct {
	cfg config.Config
	g   *digraph.Graph
	reg *changestat.Registry
	smp sampler.Sampler
}

// load reads cfgPath, assembles the network and its attribute/zone/term
// data, runs the deferred graph-dependent validations config.Validate
// could not perform on its own, resolves the statistic registry, and
// constructs the sampler (basic or IFD) and its task-seeded Generator.
func load(cfgPath string, taskNum int) (*task, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	g, err := pajekio.LoadGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := validateAgainstGraph(cfg, g); err != nil {
		return nil, err
	}

	reg, err := config.BuildRegistry(cfg, g)
	if err != nil {
		return nil, err
	}

	seed := masterSeed*31 + uint64(taskNum)
	rng := rand.New(rand.NewPCG(seed, masterSeed))
	gen := propose.New(rng, g, constraintsOf(cfg))

	var smp sampler.Sampler
	if cfg.UseIFDSampler {
		ifd, err := sampler.NewIFDSampler(gen, reg, cfg.IfdK)
		if err != nil {
			return nil, err
		}
		smp = sampler.NewIFDTaskSampler(ifd)
	} else {
		smp = sampler.NewBasicSampler(gen, reg)
	}

	return &task{cfg: cfg, g: g, reg: reg, smp: smp}, nil
}

func constraintsOf(cfg config.Config) propose.Constraints {
	regime := propose.RegimePlain
	switch {
	case cfg.UseConditionalEstimation:
		regime = propose.RegimeSnowball
	case cfg.CitationERGM:
		regime = propose.RegimeCitation
	}
	return propose.Constraints{
		Regime:            regime,
		ForbidReciprocity: cfg.ForbidReciprocity,
		AllowLoops:        cfg.AllowLoops,
	}
}

// validateAgainstGraph checks the two Config rules that need the loaded
// graph's zone/term/directedness data, which config.Validate explicitly
// defers to this package.
func validateAgainstGraph(cfg config.Config, g *digraph.Graph) error {
	if cfg.UseConditionalEstimation && g.MaxZone() == 0 {
		return fmt.Errorf("driver: zone file %q defines fewer than two waves, nothing to condition on", cfg.ZoneFilename)
	}
	if cfg.CitationERGM && !g.IsDirected() {
		return fmt.Errorf("driver: citationERGM requires a directed network, got an undirected one")
	}
	return nil
}

// statNames returns the active statistic names in registry order, for
// trajectory.Writer's header row.
func statNames(reg *changestat.Registry) []string {
	names := make([]string, len(reg.Specs))
	for l, spec := range reg.Specs {
		names[l] = spec.Name
	}
	return names
}

// eeConfigOf narrows a config.Config down to the tunables Algorithm
// S/EE need.
func eeConfigOf(cfg config.Config) ee.Config {
	return ee.Config{
		ACA_S:            cfg.ACA_S,
		ACA_EE:           cfg.ACA_EE,
		CompC:            cfg.CompC,
		MinThetaMean:     cfg.MinThetaMean,
		ThetaSDThreshold: cfg.ThetaSDThreshold,
		SamplerM:         cfg.SamplerM,
		M1Steps:          cfg.Ssteps,
		Mouter:           cfg.EEsteps,
		Minner:           cfg.EEinner,
		OutputAllSteps:   cfg.OutputAllSteps,
		UseBorisenko:     cfg.UseBorisenkoUpdate,
		LearningRate:     cfg.LearningRate,
		MinTheta:         cfg.MinTheta,
	}
}
