package digraph

// attrIndex returns the column index of name within names, or -1 if absent.
func attrIndex(names []string, name string) int {
	for k, n := range names {
		if n == name {
			return k
		}
	}
	return -1
}

// BinaryAttr returns the value of binary attribute name at node i (0, 1,
// or BinaryNA), and whether the attribute exists.
func (g *Graph) BinaryAttr(name string, i int) (int, bool) {
	k := attrIndex(g.binAttrNames, name)
	if k < 0 {
		return 0, false
	}
	return g.binAttr[k][i], true
}

// CategoricalAttr returns the value of categorical attribute name at node
// i (>=0, or CategoricalNA), and whether the attribute exists.
func (g *Graph) CategoricalAttr(name string, i int) (int, bool) {
	k := attrIndex(g.catAttrNames, name)
	if k < 0 {
		return 0, false
	}
	return g.catAttr[k][i], true
}

// ContinuousAttr returns the value of continuous attribute name at node i
// (or NaN), and whether the attribute exists.
func (g *Graph) ContinuousAttr(name string, i int) (float64, bool) {
	k := attrIndex(g.contAttrNames, name)
	if k < 0 {
		return 0, false
	}
	return g.contAttr[k][i], true
}

// SetAttr returns the value of set-valued attribute name at node i, and
// whether the attribute exists.
func (g *Graph) SetAttr(name string, i int) ([]int, bool) {
	k := attrIndex(g.setAttrNames, name)
	if k < 0 {
		return nil, false
	}
	return g.setAttr[k][i], true
}

// BinAttrNames, CatAttrNames, ContAttrNames, SetAttrNames expose the
// ordered attribute-column names attached to g, so callers (the config
// layer, the reference change-statistic library) can resolve a name to
// the column index Spec.AttrIndex expects.
func (g *Graph) BinAttrNames() []string  { return g.binAttrNames }
func (g *Graph) CatAttrNames() []string  { return g.catAttrNames }
func (g *Graph) ContAttrNames() []string { return g.contAttrNames }
func (g *Graph) SetAttrNames() []string  { return g.setAttrNames }

// BinaryAttrAt returns the value of the binary attribute at column idx
// for node i.
func (g *Graph) BinaryAttrAt(idx, i int) int { return g.binAttr[idx][i] }

// CategoricalAttrAt returns the value of the categorical attribute at
// column idx for node i.
func (g *Graph) CategoricalAttrAt(idx, i int) int { return g.catAttr[idx][i] }

// ContinuousAttrAt returns the value of the continuous attribute at
// column idx for node i.
func (g *Graph) ContinuousAttrAt(idx, i int) float64 { return g.contAttr[idx][i] }

// SetAttrAt returns the value of the set-valued attribute at column idx
// for node i.
func (g *Graph) SetAttrAt(idx, i int) []int { return g.setAttr[idx][i]
}

// Clone returns a copy of g whose arc lists, arc index, two-path counters
// and arc-dependent snowball/citation side-state (zones, inner-arc and
// max-term-sender-arc indexes, previous-wave degrees) are copied, so arc
// changes on either graph leave the other untouched. The attribute tables,
// the inner-node lists and the citation term data are shared with the
// original, not copied. Used by samplers that need a scratch copy, e.g. to
// compute change statistics without mutating the live graph.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		numNodes:   g.numNodes,
		directed:   g.directed,
		outAdj:     make([]map[int]int, g.numNodes),
		arclist:    make([][]int, g.numNodes),
		inAdj:      make([]map[int]int, g.numNodes),
		revarclist: make([][]int, g.numNodes),
		allarcs:    append([]arcPair(nil), g.allarcs...),
		allarcsPos: make(map[arcPair]int, len(g.allarcsPos)),
	}
	for i := 0; i < g.numNodes; i++ {
		c.outAdj[i] = make(map[int]int, len(g.outAdj[i]))
		for k, v := range g.outAdj[i] {
			c.outAdj[i][k] = v
		}
		c.inAdj[i] = make(map[int]int, len(g.inAdj[i]))
		for k, v := range g.inAdj[i] {
			c.inAdj[i][k] = v
		}
		c.arclist[i] = append([]int(nil), g.arclist[i]...)
		c.revarclist[i] = append([]int(nil), g.revarclist[i]...)
	}
	for k, v := range g.allarcsPos {
		c.allarcsPos[k] = v
	}

	if g.directed {
		c.mixTwoPath = cloneTwoPath(g.mixTwoPath, g.numNodes)
		c.inTwoPath = cloneTwoPath(g.inTwoPath, g.numNodes)
		c.outTwoPath = cloneTwoPath(g.outTwoPath, g.numNodes)
	} else {
		c.twoPath = cloneTwoPath(g.twoPath, g.numNodes)
	}

	c.binAttrNames = g.binAttrNames
	c.binAttr = g.binAttr
	c.catAttrNames = g.catAttrNames
	c.catAttr = g.catAttr
	c.contAttrNames = g.contAttrNames
	c.contAttr = g.contAttr
	c.setAttrNames = g.setAttrNames
	c.setAttr = g.setAttr

	if g.snowball != nil {
		c.snowball = &snowballState{
			zone:           append([]int(nil), g.snowball.zone...),
			maxZone:        g.snowball.maxZone,
			innerNodes:     g.snowball.innerNodes,
			isInner:        g.snowball.isInner,
			allInnerArcs:   append([]arcPair(nil), g.snowball.allInnerArcs...),
			innerArcPos:    cloneArcPosMap(g.snowball.innerArcPos),
			prevWaveDegree: append([]int(nil), g.snowball.prevWaveDegree...),
		}
	}
	if g.citation != nil {
		c.citation = &citationState{
			term:                 g.citation.term,
			maxTerm:              g.citation.maxTerm,
			maxTermNodes:         g.citation.maxTermNodes,
			allMaxTermSenderArcs: append([]arcPair(nil), g.citation.allMaxTermSenderArcs...),
			maxTermSenderArcPos:  cloneArcPosMap(g.citation.maxTermSenderArcPos),
		}
	}

	return c
}

func cloneTwoPath(t TwoPathTable, n int) TwoPathTable {
	switch orig := t.(type) {
	case *DenseTwoPathTable:
		d := NewDenseTwoPathTable(n)
		copy(d.cells, orig.cells)
		return d
	case *SparseTwoPathTable:
		s := NewSparseTwoPathTable()
		for k, v := range orig.counts {
			s.counts[k] = v
		}
		return s
	default:
		return t
	}
}

func cloneArcPosMap(m map[arcPair]int) map[arcPair]int {
	c := make(map[arcPair]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
