package digraph

// IsArc reports whether arc i->j (or, for undirected graphs, edge i-j) is
// currently present. Implemented as an O(1) hash lookup.
func (g *Graph) IsArc(i, j int) bool {
	_, ok := g.outAdj[i][j]
	return ok
}

// OutNeighbours returns the current out-neighbours of i (in-neighbours too,
// for undirected graphs). The returned slice is owned by Graph and must
// not be mutated by the caller.
func (g *Graph) OutNeighbours(i int) []int { return g.arclist[i] }

// InNeighbours returns the current in-neighbours of i (equal to
// OutNeighbours for undirected graphs). The returned slice is owned by
// Graph and must not be mutated by the caller.
func (g *Graph) InNeighbours(i int) []int { return g.revarclist[i] }

// ArcAt returns the k'th arc in the flat allarcs index, used by proposal
// generators to pick a uniformly random existing arc in O(1).
func (g *Graph) ArcAt(k int) (i, j int) {
	a := g.allarcs[k]
	return a.i, a.j
}

func checkNode(g *Graph, i int) error {
	if i < 0 || i >= g.numNodes {
		return ErrNodeOutOfRange
	}
	return nil
}

// InsertArc adds arc i->j (edge i-j for undirected graphs), maintaining
// arclist/revarclist, outdegree/indegree, allarcs, the two-path counters,
// and any attached snowball/citation side-state.
func (g *Graph) InsertArc(i, j int) error {
	if err := checkNode(g, i); err != nil {
		return err
	}
	if err := checkNode(g, j); err != nil {
		return err
	}
	if g.IsArc(i, j) {
		return ErrArcExists
	}

	g.applyTwoPathDelta(i, j, +1)

	g.rawInsert(i, j)
	if !g.directed {
		g.rawInsert(j, i)
	}

	pair := arcPair{i, j}
	g.allarcsPos[pair] = len(g.allarcs)
	g.allarcs = append(g.allarcs, pair)

	if g.snowball != nil {
		g.snowball.onInsert(g, i, j)
	}
	if g.citation != nil {
		g.citation.onInsert(i, j)
	}
	return nil
}

// RemoveArc deletes arc i->j (edge i-j for undirected graphs), maintaining
// all the same structures as InsertArc, in reverse.
func (g *Graph) RemoveArc(i, j int) error {
	if err := checkNode(g, i); err != nil {
		return err
	}
	if err := checkNode(g, j); err != nil {
		return err
	}
	if !g.IsArc(i, j) {
		return ErrArcNotFound
	}

	if g.snowball != nil {
		g.snowball.onRemove(g, i, j)
	}
	if g.citation != nil {
		g.citation.onRemove(i, j)
	}

	// An undirected edge is indexed under the orientation it was inserted
	// with, which may be (j,i).
	pair := arcPair{i, j}
	if _, ok := g.allarcsPos[pair]; !ok && !g.directed {
		pair = arcPair{j, i}
	}
	g.removeFromAllarcs(pair)

	g.rawRemove(i, j)
	if !g.directed {
		g.rawRemove(j, i)
	}

	g.applyTwoPathDelta(i, j, -1)

	return nil
}

// rawInsert adds j to outAdj[i]/arclist[i] and i to inAdj[j]/revarclist[j],
// without touching allarcs or two-path counters.
func (g *Graph) rawInsert(i, j int) {
	g.outAdj[i][j] = len(g.arclist[i])
	g.arclist[i] = append(g.arclist[i], j)
	g.inAdj[j][i] = len(g.revarclist[j])
	g.revarclist[j] = append(g.revarclist[j], i)
}

// rawRemove undoes rawInsert via swap-with-last, O(1).
func (g *Graph) rawRemove(i, j int) {
	pos := g.outAdj[i][j]
	last := len(g.arclist[i]) - 1
	lastNode := g.arclist[i][last]
	g.arclist[i][pos] = lastNode
	g.outAdj[i][lastNode] = pos
	g.arclist[i] = g.arclist[i][:last]
	delete(g.outAdj[i], j)

	pos = g.inAdj[j][i]
	last = len(g.revarclist[j]) - 1
	lastNode = g.revarclist[j][last]
	g.revarclist[j][pos] = lastNode
	g.inAdj[j][lastNode] = pos
	g.revarclist[j] = g.revarclist[j][:last]
	delete(g.inAdj[j], i)
}

// removeFromAllarcs deletes pair from the flat allarcs index via
// swap-with-last, keeping it dense and O(1).
func (g *Graph) removeFromAllarcs(pair arcPair) {
	pos := g.allarcsPos[pair]
	last := len(g.allarcs) - 1
	lastPair := g.allarcs[last]
	g.allarcs[pos] = lastPair
	g.allarcsPos[lastPair] = pos
	g.allarcs = g.allarcs[:last]
	delete(g.allarcsPos, pair)
}

// applyTwoPathDelta updates the two-path counters for the insertion
// (sign=+1) or removal (sign=-1) of arc i->j. Neighbour lists are read
// before the arc itself is added (insert) or after it has been taken out
// (remove), so in both cases they exclude the toggled arc and the delta
// never transiently double-counts it.
//
// Diagonal entries need care: a toggled arc i->j can make k==i or k==j
// turn up among the *other* endpoint's neighbours in a perfectly legitimate
// way (e.g. a reciprocated pair), so the cross-term loops below must not
// skip those matches. On top of the cross terms, each counter also has a
// self term that the toggled arc contributes to on its own (in[j,j] is
// indegree(j), out[i,i] is outdegree(i), twoPath[i,i] and [j,j] are
// degree(i) and degree(j)); those are added unconditionally since they
// never arise from scanning a neighbour list that, by construction,
// excludes the arc being toggled.
func (g *Graph) applyTwoPathDelta(i, j int, sign int) {
	if g.directed {
		// mixTwoPath[i,k] += sign for each k in out-neighbours(j): the new/old
		// two-path i->j->k.
		for _, k := range g.arclist[j] {
			g.mixTwoPath.Add(i, k, sign)
		}
		// mixTwoPath[k,j] += sign for each k in in-neighbours(i): the new/old
		// two-path k->i->j.
		for _, k := range g.revarclist[i] {
			g.mixTwoPath.Add(k, j, sign)
		}
		// inTwoPath[a,j] (and its symmetric [j,a]) += sign for each a in
		// out-neighbours(i): i now (or no longer) sends to both a and j.
		for _, a := range g.arclist[i] {
			g.inTwoPath.Add(a, j, sign)
			g.inTwoPath.Add(j, a, sign)
		}
		// outTwoPath[i,b] (and its symmetric [b,i]) += sign for each b in
		// in-neighbours(j): j is now (or was) a common out-neighbour of i and b.
		for _, b := range g.revarclist[j] {
			g.outTwoPath.Add(i, b, sign)
			g.outTwoPath.Add(b, i, sign)
		}
		g.inTwoPath.Add(j, j, sign)
		g.outTwoPath.Add(i, i, sign)
		return
	}

	// Undirected: twoPath[a,b] counts shared neighbours of a and b.
	for _, k := range g.arclist[j] {
		g.twoPath.Add(i, k, sign)
		g.twoPath.Add(k, i, sign)
	}
	for _, k := range g.arclist[i] {
		g.twoPath.Add(j, k, sign)
		g.twoPath.Add(k, j, sign)
	}
	g.twoPath.Add(i, i, sign)
	g.twoPath.Add(j, j, sign)
}

// MixedTwoPaths returns the number of two-paths i->k->j (directed graphs
// only).
func (g *Graph) MixedTwoPaths(i, j int) int { return g.mixTwoPath.Get(i, j) }

// InTwoPaths returns the number of nodes k with arcs k->i and k->j
// (directed graphs only).
func (g *Graph) InTwoPaths(i, j int) int { return g.inTwoPath.Get(i, j) }

// OutTwoPaths returns the number of nodes k with arcs i->k and j->k
// (directed graphs only).
func (g *Graph) OutTwoPaths(i, j int) int { return g.outTwoPath.Get(i, j) }

// UndirectedTwoPaths returns the number of nodes k with edges i-k and k-j
// (undirected graphs only).
func (g *Graph) UndirectedTwoPaths(i, j int) int { return g.twoPath.Get(i, j) }
