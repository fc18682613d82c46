package changestat

import "github.com/grafestim/ergmee/digraph"

// Sender contributes binAttr[i] (0 or 1) if i's attribute is not missing,
// else 0: nodes with the attribute are more (or less, depending on the
// fitted sign) likely to send arcs.
func Sender(g *digraph.Graph, i, j, attrIndex int) float64 {
	v := g.BinaryAttrAt(attrIndex, i)
	if v == digraph.BinaryNA {
		return 0
	}
	return float64(v)
}

// Receiver is the receiving-side counterpart of Sender: it reads j's
// attribute value.
func Receiver(g *digraph.Graph, i, j, attrIndex int) float64 {
	v := g.BinaryAttrAt(attrIndex, j)
	if v == digraph.BinaryNA {
		return 0
	}
	return float64(v)
}

// Interaction contributes 1 if both i and j have the binary attribute
// set, capturing a homophilous "both have it" effect distinct from
// Matching's "both the same value" effect.
func Interaction(g *digraph.Graph, i, j, attrIndex int) float64 {
	vi, vj := g.BinaryAttrAt(attrIndex, i), g.BinaryAttrAt(attrIndex, j)
	if vi == digraph.BinaryNA || vj == digraph.BinaryNA {
		return 0
	}
	if vi == 1 && vj == 1 {
		return 1
	}
	return 0
}

// Matching contributes 1 if i and j share the same categorical attribute
// value (homophily).
func Matching(g *digraph.Graph, i, j, attrIndex int) float64 {
	vi, vj := g.CategoricalAttrAt(attrIndex, i), g.CategoricalAttrAt(attrIndex, j)
	if vi == digraph.CategoricalNA || vj == digraph.CategoricalNA {
		return 0
	}
	if vi == vj {
		return 1
	}
	return 0
}

// Mismatching is Matching's complement: heterophily.
func Mismatching(g *digraph.Graph, i, j, attrIndex int) float64 {
	vi, vj := g.CategoricalAttrAt(attrIndex, i), g.CategoricalAttrAt(attrIndex, j)
	if vi == digraph.CategoricalNA || vj == digraph.CategoricalNA {
		return 0
	}
	if vi != vj {
		return 1
	}
	return 0
}

// ContinuousSender contributes i's continuous attribute value, or 0 if
// missing.
func ContinuousSender(g *digraph.Graph, i, j, attrIndex int) float64 {
	v := g.ContinuousAttrAt(attrIndex, i)
	if digraph.ContinuousNA(v) {
		return 0
	}
	return v
}

// ContinuousReceiver is the receiving-side counterpart of
// ContinuousSender.
func ContinuousReceiver(g *digraph.Graph, i, j, attrIndex int) float64 {
	v := g.ContinuousAttrAt(attrIndex, j)
	if digraph.ContinuousNA(v) {
		return 0
	}
	return v
}

// Diff contributes |attr(i) - attr(j)|, a continuous heterophily measure.
func Diff(g *digraph.Graph, i, j, attrIndex int) float64 {
	vi, vj := g.ContinuousAttrAt(attrIndex, i), g.ContinuousAttrAt(attrIndex, j)
	if digraph.ContinuousNA(vi) || digraph.ContinuousNA(vj) {
		return 0
	}
	d := vi - vj
	if d < 0 {
		return -d
	}
	return d
}
