package digraph

// initSnowball attaches snowball-sample zone data to g. zones[i] is the
// wave index at which node i entered the sample; maxZone is derived as the
// largest value present. Nodes with zone < maxZone are "inner" nodes,
// eligible for conditional (zone-respecting) estimation.
func (g *Graph) initSnowball(zones []int) {
	maxZone := 0
	for _, z := range zones {
		if z > maxZone {
			maxZone = z
		}
	}

	s := &snowballState{
		zone:           append([]int(nil), zones...),
		maxZone:        maxZone,
		isInner:        make([]bool, len(zones)),
		innerArcPos:    make(map[arcPair]int),
		prevWaveDegree: make([]int, len(zones)),
	}
	for i, z := range zones {
		if z < maxZone {
			s.isInner[i] = true
			s.innerNodes = append(s.innerNodes, i)
		}
	}
	g.snowball = s
}

// Zone returns the snowball wave index of node i, or -1 if the Graph has
// no snowball data attached.
func (g *Graph) Zone(i int) int {
	if g.snowball == nil {
		return -1
	}
	return g.snowball.zone[i]
}

// MaxZone returns the highest wave index present in the attached snowball
// sample.
func (g *Graph) MaxZone() int {
	if g.snowball == nil {
		return 0
	}
	return g.snowball.maxZone
}

// IsInnerNode reports whether node i lies strictly within the snowball
// sample (zone < MaxZone), making it eligible as an endpoint for
// conditional estimation moves.
func (g *Graph) IsInnerNode(i int) bool {
	if g.snowball == nil {
		return false
	}
	return g.snowball.isInner[i]
}

// InnerNodes returns the node indices with zone < MaxZone.
func (g *Graph) InnerNodes() []int {
	if g.snowball == nil {
		return nil
	}
	return g.snowball.innerNodes
}

// NumInnerArcs returns the number of current arcs with both endpoints
// inner, the denominator used by the snowball-conditional arc correction.
func (g *Graph) NumInnerArcs() int {
	if g.snowball == nil {
		return 0
	}
	return len(g.snowball.allInnerArcs)
}

// InnerArcAt returns the k'th arc with both endpoints inner, for uniform
// random selection by the snowball-conditional proposal generator.
func (g *Graph) InnerArcAt(k int) (i, j int) {
	a := g.snowball.allInnerArcs[k]
	return a.i, a.j
}

// PrevWaveDegree returns the number of arcs, in either direction, between
// i and nodes in zone[i]-1, i.e. i's number of "parents" in the previous
// wave. Used by the
// snowball-conditional proposal generator to preserve each inner node's
// recruiter count.
func (g *Graph) PrevWaveDegree(i int) int {
	if g.snowball == nil {
		return 0
	}
	return g.snowball.prevWaveDegree[i]
}

func (s *snowballState) onInsert(g *Graph, i, j int) {
	if s.isInner[i] && s.isInner[j] {
		pair := arcPair{i, j}
		s.innerArcPos[pair] = len(s.allInnerArcs)
		s.allInnerArcs = append(s.allInnerArcs, pair)
	}
	if s.zone[j] == s.zone[i]-1 {
		s.prevWaveDegree[i]++
	}
	if s.zone[i] == s.zone[j]-1 {
		s.prevWaveDegree[j]++
	}
}

func (s *snowballState) onRemove(g *Graph, i, j int) {
	if s.isInner[i] && s.isInner[j] {
		pair := arcPair{i, j}
		pos := s.innerArcPos[pair]
		last := len(s.allInnerArcs) - 1
		lastPair := s.allInnerArcs[last]
		s.allInnerArcs[pos] = lastPair
		s.innerArcPos[lastPair] = pos
		s.allInnerArcs = s.allInnerArcs[:last]
		delete(s.innerArcPos, pair)
	}
	if s.zone[j] == s.zone[i]-1 {
		s.prevWaveDegree[i]--
	}
	if s.zone[i] == s.zone[j]-1 {
		s.prevWaveDegree[j]--
	}
}
