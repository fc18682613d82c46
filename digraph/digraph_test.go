package digraph

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reverseArclistIsTranspose checks revarclist[j] contains exactly the set
// of i such that j is present in arclist[i].
func reverseArclistIsTranspose(t *testing.T, g *Graph) {
	t.Helper()
	want := make([]map[int]bool, g.numNodes)
	for i := range want {
		want[i] = make(map[int]bool)
	}
	for i := 0; i < g.numNodes; i++ {
		for _, j := range g.arclist[i] {
			want[j][i] = true
		}
	}
	for j := 0; j < g.numNodes; j++ {
		got := make(map[int]bool)
		for _, i := range g.revarclist[j] {
			got[i] = true
		}
		require.Lenf(t, got, len(want[j]), "node %d: revarclist length mismatch: got %v want %v", j, got, want[j])
		for i := range want[j] {
			assert.Truef(t, got[i], "node %d: revarclist missing in-neighbour %d", j, i)
		}
	}
}

// allarcsMatchesLiveArcs checks the flat allarcs index contains exactly the
// set of currently live arcs, each exactly once. An undirected edge shows
// up in both endpoints' arc lists but is indexed once, under the
// orientation it was inserted with.
func allarcsMatchesLiveArcs(t *testing.T, g *Graph) {
	t.Helper()
	require.Equal(t, g.NumArcs(), len(g.allarcs), "allarcs length mismatch")
	for _, pair := range g.allarcs {
		assert.Truef(t, g.IsArc(pair.i, pair.j), "allarcs contains non-live arc %v", pair)
	}
	for i := 0; i < g.numNodes; i++ {
		for _, j := range g.arclist[i] {
			pair := arcPair{i, j}
			if _, ok := g.allarcsPos[pair]; !ok && !g.directed {
				pair = arcPair{j, i}
			}
			pos, ok := g.allarcsPos[pair]
			assert.Truef(t, ok && g.allarcs[pos] == pair, "live arc %v missing from allarcs index", pair)
		}
	}
}

// bruteTwoPaths recomputes all two-path counts by brute force, for
// comparison against the incrementally maintained counters.
func bruteTwoPaths(g *Graph) (mix, in, out, und [][]int) {
	n := g.numNodes
	alloc := func() [][]int {
		m := make([][]int, n)
		for i := range m {
			m[i] = make([]int, n)
		}
		return m
	}
	if g.directed {
		mix, in, out = alloc(), alloc(), alloc()
		for k := 0; k < n; k++ {
			for _, i := range g.revarclist[k] {
				for _, j := range g.arclist[k] {
					mix[i][j]++
				}
			}
		}
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				for k := 0; k < n; k++ {
					if g.IsArc(k, a) && g.IsArc(k, b) {
						in[a][b]++
					}
					if g.IsArc(a, k) && g.IsArc(b, k) {
						out[a][b]++
					}
				}
			}
		}
	} else {
		und = alloc()
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				for k := 0; k < n; k++ {
					if g.IsArc(a, k) && g.IsArc(k, b) {
						und[a][b]++
					}
				}
			}
		}
	}
	return
}

func checkTwoPathsMatch(t *testing.T, g *Graph) {
	t.Helper()
	mix, in, out, und := bruteTwoPaths(g)
	n := g.numNodes
	if g.directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equalf(t, mix[i][j], g.MixedTwoPaths(i, j), "mixed two-path (%d,%d)", i, j)
				assert.Equalf(t, in[i][j], g.InTwoPaths(i, j), "in two-path (%d,%d)", i, j)
				assert.Equalf(t, out[i][j], g.OutTwoPaths(i, j), "out two-path (%d,%d)", i, j)
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equalf(t, und[i][j], g.UndirectedTwoPaths(i, j), "undirected two-path (%d,%d)", i, j)
			}
		}
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	g := New(6, true)
	require.NoError(t, g.InsertArc(0, 1))
	assert.True(t, g.IsArc(0, 1), "expected arc present")

	require.NoError(t, g.RemoveArc(0, 1))
	assert.False(t, g.IsArc(0, 1), "expected arc absent after removal")
	assert.Equal(t, 0, g.NumArcs())
}

func TestInsertArcErrors(t *testing.T) {
	g := New(3, true)
	require.NoError(t, g.InsertArc(0, 1))
	assert.ErrorIs(t, g.InsertArc(0, 1), ErrArcExists)
	assert.ErrorIs(t, g.InsertArc(0, 5), ErrNodeOutOfRange)
	assert.ErrorIs(t, g.RemoveArc(1, 2), ErrArcNotFound)
}

func TestRandomizedToggleSequenceDirected(t *testing.T) {
	const n = 8
	g := New(n, true, WithDenseTwoPath())
	rng := rand.New(rand.NewPCG(1, 2))

	for step := 0; step < 500; step++ {
		i, j := rng.IntN(n), rng.IntN(n)
		if i == j {
			continue
		}
		if g.IsArc(i, j) {
			require.NoErrorf(t, g.RemoveArc(i, j), "step %d: RemoveArc(%d,%d)", step, i, j)
		} else {
			require.NoErrorf(t, g.InsertArc(i, j), "step %d: InsertArc(%d,%d)", step, i, j)
		}
		if step%37 == 0 {
			reverseArclistIsTranspose(t, g)
			allarcsMatchesLiveArcs(t, g)
			checkTwoPathsMatch(t, g)
		}
	}
	reverseArclistIsTranspose(t, g)
	allarcsMatchesLiveArcs(t, g)
	checkTwoPathsMatch(t, g)
}

func TestRandomizedToggleSequenceDirectedSparse(t *testing.T) {
	const n = 8
	g := New(n, true, WithSparseTwoPath())
	rng := rand.New(rand.NewPCG(3, 4))

	for step := 0; step < 300; step++ {
		i, j := rng.IntN(n), rng.IntN(n)
		if i == j {
			continue
		}
		if g.IsArc(i, j) {
			_ = g.RemoveArc(i, j)
		} else {
			_ = g.InsertArc(i, j)
		}
	}
	checkTwoPathsMatch(t, g)
}

func TestRandomizedToggleSequenceUndirected(t *testing.T) {
	const n = 7
	g := New(n, false)
	rng := rand.New(rand.NewPCG(5, 6))

	for step := 0; step < 300; step++ {
		i, j := rng.IntN(n), rng.IntN(n)
		if i == j {
			continue
		}
		if g.IsArc(i, j) {
			_ = g.RemoveArc(i, j)
		} else {
			_ = g.InsertArc(i, j)
		}
	}
	reverseArclistIsTranspose(t, g)
	allarcsMatchesLiveArcs(t, g)
	checkTwoPathsMatch(t, g)

	// Undirected: an edge is symmetric, so OutNeighbours == InNeighbours.
	for i := 0; i < n; i++ {
		out := map[int]bool{}
		for _, j := range g.OutNeighbours(i) {
			out[j] = true
		}
		for _, j := range g.InNeighbours(i) {
			assert.Truef(t, out[j], "node %d: in-neighbour %d not an out-neighbour in undirected graph", i, j)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	g := New(5, true)
	_ = g.InsertArc(0, 1)
	_ = g.InsertArc(1, 2)
	c := g.Clone()

	require.NoError(t, c.InsertArc(2, 3))
	assert.False(t, g.IsArc(2, 3), "mutation of clone leaked into original")
	assert.Equal(t, g.MixedTwoPaths(0, 2), c.MixedTwoPaths(0, 2), "clone two-path counts diverged from source before mutation")
}

func TestSnowballInnerArcs(t *testing.T) {
	zones := []int{0, 0, 1, 1, 2}
	g := New(5, true, WithSnowballZones(zones))

	require.NoError(t, g.InsertArc(0, 2)) // inner(0) -> inner(2): zone 0,1 both < maxZone 2
	require.NoError(t, g.InsertArc(2, 4)) // inner(2) -> outer(4): zone(4)==2 not < maxZone
	assert.Equal(t, 1, g.NumInnerArcs())

	i, j := g.InnerArcAt(0)
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, j)
	assert.Equal(t, 1, g.PrevWaveDegree(2))

	require.NoError(t, g.RemoveArc(0, 2))
	assert.Equal(t, 0, g.NumInnerArcs())
}

func TestCitationMaxTermSenderArcs(t *testing.T) {
	terms := []int{0, 0, 1, 1}
	g := New(4, true, WithCitationTerms(terms))

	require.NoError(t, g.InsertArc(2, 0)) // sender in final term
	require.NoError(t, g.InsertArc(0, 1)) // sender not in final term
	assert.Equal(t, 1, g.NumMaxTermSenderArcs())

	i, j := g.MaxTermSenderArcAt(0)
	assert.Equal(t, 2, i)
	assert.Equal(t, 0, j)
}
