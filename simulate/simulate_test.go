package simulate_test

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/propose"
	"github.com/grafestim/ergmee/sampler"
	"github.com/grafestim/ergmee/simulate"
)

func newFixture(t *testing.T) (*digraph.Graph, *changestat.Registry, sampler.Sampler) {
	t.Helper()
	g := digraph.New(6, true)
	reg := &changestat.Registry{Specs: []changestat.Spec{
		{Kind: changestat.Structural, Name: "Arc", Structural: changestat.Arc},
	}}
	rng := rand.New(rand.NewPCG(1, 1))
	gen := propose.New(rng, g, propose.Constraints{Regime: propose.RegimePlain})
	smp := sampler.NewBasicSampler(gen, reg)
	return g, reg, smp
}

func TestRunRecordsSnapshotsAtInterval(t *testing.T) {
	g, reg, smp := newFixture(t)
	theta := []float64{-0.5}

	snaps, err := simulate.Run(g, reg, smp, theta, 20, 5, "")
	require.NoError(t, err)
	require.Len(t, snaps, 4)
	for k, s := range snaps {
		want := (k + 1) * 5
		assert.Equal(t, want, s.Iteration, "snapshot %d", k)
		assert.Nil(t, s.Net, "snapshot %d: expected nil Net with empty netPrefix", k)
	}
}

func TestRunClonesNetworkWhenPrefixGiven(t *testing.T) {
	g, reg, smp := newFixture(t)
	theta := []float64{-0.5}

	snaps, err := simulate.Run(g, reg, smp, theta, 10, 5, "net")
	require.NoError(t, err)
	for k, s := range snaps {
		assert.NotNil(t, s.Net, "snapshot %d: expected cloned Net with non-empty netPrefix", k)
	}
}

func TestRunHandlesNonMultipleSteps(t *testing.T) {
	g, reg, smp := newFixture(t)
	theta := []float64{-0.5}

	snaps, err := simulate.Run(g, reg, smp, theta, 13, 5, "")
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.Equal(t, 13, snaps[2].Iteration)
}

func TestRunRejectsThetaArityMismatch(t *testing.T) {
	g, reg, smp := newFixture(t)
	_, err := simulate.Run(g, reg, smp, []float64{1, 2}, 10, 5, "")
	assert.Error(t, err)
}

func TestWriteSnapshotsProducesReadableYAML(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "run1")
	snaps := []simulate.NetworkSnapshot{{Iteration: 5, Stats: []float64{1.5}}, {Iteration: 10, Stats: []float64{2.5}}}

	require.NoError(t, simulate.WriteSnapshots(prefix, []string{"Arc"}, snaps))
	data, err := os.ReadFile(prefix + "_stats.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
