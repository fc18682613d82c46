package propose_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafestim/ergmee/digraph"
	"github.com/grafestim/ergmee/propose"
)

func TestProposeAddNeverReturnsExistingArc(t *testing.T) {
	g := digraph.New(10, true)
	for i := 0; i < 9; i++ {
		require.NoError(t, g.InsertArc(i, i+1))
	}
	gen := propose.New(rand.New(rand.NewPCG(1, 1)), g, propose.Constraints{Regime: propose.RegimePlain})

	for n := 0; n < 200; n++ {
		i, j, ok := gen.ProposeAdd()
		require.True(t, ok, "expected ok=true on a sparse graph")
		assert.False(t, g.IsArc(i, j), "proposed add (%d,%d) is already an arc", i, j)
	}
}

func TestProposeAddForbidsReciprocityWhenConfigured(t *testing.T) {
	g := digraph.New(4, true)
	require.NoError(t, g.InsertArc(0, 1))
	gen := propose.New(rand.New(rand.NewPCG(2, 2)), g, propose.Constraints{Regime: propose.RegimePlain, ForbidReciprocity: true})

	for n := 0; n < 200; n++ {
		i, j, ok := gen.ProposeAdd()
		if !ok {
			continue
		}
		assert.Falsef(t, i == 1 && j == 0, "proposed (1,0) which would reciprocate existing arc (0,1)")
	}
}

func TestProposeAddDisallowsLoopsByDefault(t *testing.T) {
	g := digraph.New(3, true)
	gen := propose.New(rand.New(rand.NewPCG(3, 3)), g, propose.Constraints{Regime: propose.RegimePlain})

	for n := 0; n < 200; n++ {
		i, j, ok := gen.ProposeAdd()
		if ok {
			assert.NotEqual(t, i, j, "loop (%d,%d) proposed despite AllowLoops=false", i, j)
		}
	}
}

func TestProposeDeleteOnEmptyGraphFails(t *testing.T) {
	g := digraph.New(3, true)
	gen := propose.New(rand.New(rand.NewPCG(4, 4)), g, propose.Constraints{Regime: propose.RegimePlain})
	_, _, _, ok := gen.ProposeDelete()
	assert.False(t, ok, "expected ok=false deleting from an empty graph")
}

func TestProposeDeletePicksExistingArc(t *testing.T) {
	g := digraph.New(5, true)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(2, 3))
	gen := propose.New(rand.New(rand.NewPCG(5, 5)), g, propose.Constraints{Regime: propose.RegimePlain})

	i, j, _, ok := gen.ProposeDelete()
	require.True(t, ok)
	assert.True(t, g.IsArc(i, j), "proposed delete (%d,%d) is not a live arc", i, j)
}

func TestSnowballRegimeRestrictsToInnerNodes(t *testing.T) {
	zones := []int{0, 0, 1, 1, 2, 2}
	g := digraph.New(6, true, digraph.WithSnowballZones(zones))
	gen := propose.New(rand.New(rand.NewPCG(6, 6)), g, propose.Constraints{Regime: propose.RegimeSnowball})

	for n := 0; n < 200; n++ {
		i, j, ok := gen.ProposeAdd()
		if !ok {
			continue
		}
		assert.True(t, g.IsInnerNode(i) && g.IsInnerNode(j), "snowball-regime proposal (%d,%d) touches a non-inner node", i, j)
	}
}

func TestSnowballRegimeRestrictsToAdjacentZones(t *testing.T) {
	zones := []int{0, 0, 1, 1, 2, 2, 3, 3}
	g := digraph.New(8, true, digraph.WithSnowballZones(zones))
	gen := propose.New(rand.New(rand.NewPCG(8, 8)), g, propose.Constraints{Regime: propose.RegimeSnowball})

	for n := 0; n < 500; n++ {
		i, j, ok := gen.ProposeAdd()
		if !ok {
			continue
		}
		d := g.Zone(i) - g.Zone(j)
		assert.Falsef(t, d > 1 || d < -1, "snowball-regime proposal (%d,%d) spans non-adjacent zones %d,%d", i, j, g.Zone(i), g.Zone(j))
	}
}

func TestProposeDeleteSnowballRejectsLastPrevWaveTie(t *testing.T) {
	// zones 0,0,1,1,2: nodes 2 and 3 (zone 1) are each recruited by exactly
	// one zone-0 parent, arcs 0->2 and 1->3. Neither may be deleted.
	zones := []int{0, 0, 1, 1, 2}
	g := digraph.New(5, true, digraph.WithSnowballZones(zones))
	require.NoError(t, g.InsertArc(0, 2))
	require.NoError(t, g.InsertArc(1, 3))
	gen := propose.New(rand.New(rand.NewPCG(9, 9)), g, propose.Constraints{Regime: propose.RegimeSnowball})

	for n := 0; n < 200; n++ {
		i, j, _, ok := gen.ProposeDelete()
		if !ok {
			continue
		}
		orphaned := (i == 0 && j == 2) || (i == 1 && j == 3)
		assert.Falsef(t, orphaned, "proposed deleting (%d,%d), the only tie linking node %d to its previous wave", i, j, j)
	}
}

func TestCitationRegimeRestrictsSenderToFinalTerm(t *testing.T) {
	terms := []int{0, 0, 1, 1}
	g := digraph.New(4, true, digraph.WithCitationTerms(terms))
	gen := propose.New(rand.New(rand.NewPCG(7, 7)), g, propose.Constraints{Regime: propose.RegimeCitation})

	for n := 0; n < 200; n++ {
		i, _, ok := gen.ProposeAdd()
		if !ok {
			continue
		}
		assert.Equal(t, g.MaxTerm(), g.Term(i), "citation-regime proposal sender %d not in final term", i)
	}
}
