package ee_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/ee"
	"github.com/grafestim/ergmee/propose"
	"github.com/grafestim/ergmee/sampler"
)

func newTestSetup() (*digraph.Graph, *changestat.Registry, sampler.Sampler) {
	g := digraph.New(8, true)
	reg := &changestat.Registry{Specs: []changestat.Spec{
		{Kind: changestat.Structural, Name: "Arc", Structural: changestat.Arc},
	}}
	gen := propose.New(rand.New(rand.NewPCG(1, 1)), g, propose.Constraints{Regime: propose.RegimePlain})
	return g, reg, sampler.NewBasicSampler(gen, reg)
}

func TestAlgorithmSProducesFiniteDmean(t *testing.T) {
	g, reg, smp := newTestSetup()
	cfg := ee.DefaultConfig()
	cfg.M1Steps = 5
	cfg.SamplerM = 50

	theta, dmean, err := ee.AlgorithmS(g, reg, smp, cfg, nil)
	require.NoError(t, err)
	assert.Len(t, theta, 1)
	assert.Len(t, dmean, 1)
}

func TestAlgorithmEERunsWithoutError(t *testing.T) {
	g, reg, smp := newTestSetup()
	cfg := ee.DefaultConfig()
	cfg.M1Steps = 3
	cfg.Mouter = 3
	cfg.Minner = 2
	cfg.SamplerM = 30

	theta, d0, err := ee.AlgorithmS(g, reg, smp, cfg, nil)
	require.NoError(t, err)
	assert.NoError(t, ee.AlgorithmEE(g, reg, smp, cfg, theta, d0, nil, nil))
}

func TestEstimateOrchestratesBothPhases(t *testing.T) {
	g, reg, smp := newTestSetup()
	cfg := ee.DefaultConfig()
	cfg.M1Steps = 3
	cfg.Mouter = 3
	cfg.Minner = 2
	cfg.SamplerM = 30

	theta, err := ee.Estimate(g, reg, smp, cfg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, theta, 1)
}

func TestErrDegenerateMessageNamesIndex(t *testing.T) {
	err := &ee.ErrDegenerate{ParamIndex: 2}
	assert.Contains(t, err.Error(), "index 2")
}
