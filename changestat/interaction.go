package changestat

import "github.com/grafestim/ergmee/digraph"

// MatchingInteraction contributes 1 if i and j match on BOTH of two
// categorical attribute columns simultaneously, capturing homophily that
// requires joint agreement rather than agreement on either attribute
// alone (the sum of two separate Matching statistics would double-count
// dyads that agree on only one).
func MatchingInteraction(g *digraph.Graph, i, j, attrIndex, attrIndex2 int) float64 {
	a1i, a1j := g.CategoricalAttrAt(attrIndex, i), g.CategoricalAttrAt(attrIndex, j)
	a2i, a2j := g.CategoricalAttrAt(attrIndex2, i), g.CategoricalAttrAt(attrIndex2, j)
	if a1i == digraph.CategoricalNA || a1j == digraph.CategoricalNA ||
		a2i == digraph.CategoricalNA || a2j == digraph.CategoricalNA {
		return 0
	}
	if a1i == a1j && a2i == a2j {
		return 1
	}
	return 0
}
