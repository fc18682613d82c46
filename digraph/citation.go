package digraph

// initCitation attaches citation-ERGM (cERGM) term data to g. terms[i] is
// the time period node i belongs to; maxTerm is derived as the largest
// value present. Nodes with term == maxTerm are the "sender" population
// conditioned on by citation ERGM estimation: their outgoing arcs are the
// only ones free to move.
func (g *Graph) initCitation(terms []int) {
	maxTerm := 0
	for _, t := range terms {
		if t > maxTerm {
			maxTerm = t
		}
	}

	c := &citationState{
		term:                append([]int(nil), terms...),
		maxTerm:             maxTerm,
		maxTermSenderArcPos: make(map[arcPair]int),
	}
	for i, t := range terms {
		if t == maxTerm {
			c.maxTermNodes = append(c.maxTermNodes, i)
		}
	}
	g.citation = c
}

// Term returns the citation period of node i, or -1 if the Graph has no
// citation data attached.
func (g *Graph) Term(i int) int {
	if g.citation == nil {
		return -1
	}
	return g.citation.term[i]
}

// MaxTerm returns the highest citation period present.
func (g *Graph) MaxTerm() int {
	if g.citation == nil {
		return 0
	}
	return g.citation.maxTerm
}

// MaxTermNodes returns the node indices in the final citation period, the
// only nodes whose outgoing arcs citation ERGM estimation may toggle.
func (g *Graph) MaxTermNodes() []int {
	if g.citation == nil {
		return nil
	}
	return g.citation.maxTermNodes
}

// NumMaxTermSenderArcs returns the number of current arcs sent by a
// final-period node, the denominator used by the citation arc correction.
func (g *Graph) NumMaxTermSenderArcs() int {
	if g.citation == nil {
		return 0
	}
	return len(g.citation.allMaxTermSenderArcs)
}

// MaxTermSenderArcAt returns the k'th arc sent by a final-period node, for
// uniform random selection by the citation-conditional proposal generator.
func (g *Graph) MaxTermSenderArcAt(k int) (i, j int) {
	a := g.citation.allMaxTermSenderArcs[k]
	return a.i, a.j
}

func (c *citationState) onInsert(i, j int) {
	if c.term[i] == c.maxTerm {
		pair := arcPair{i, j}
		c.maxTermSenderArcPos[pair] = len(c.allMaxTermSenderArcs)
		c.allMaxTermSenderArcs = append(c.allMaxTermSenderArcs, pair)
	}
}

func (c *citationState) onRemove(i, j int) {
	if c.term[i] == c.maxTerm {
		pair := arcPair{i, j}
		pos := c.maxTermSenderArcPos[pair]
		last := len(c.allMaxTermSenderArcs) - 1
		lastPair := c.allMaxTermSenderArcs[last]
		c.allMaxTermSenderArcs[pos] = lastPair
		c.maxTermSenderArcPos[lastPair] = pos
		c.allMaxTermSenderArcs = c.allMaxTermSenderArcs[:last]
		delete(c.maxTermSenderArcPos, pair)
	}
}
