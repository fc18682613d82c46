package changestat

import (
	"math"

	"github.com/grafestim/ergmee/digraph"
)

// Arc is the edge-count statistic: every added arc contributes exactly 1.
func Arc(g *digraph.Graph, i, j int) float64 { return 1 }

// Reciprocity contributes 1 if j already has an arc back to i, i.e. i->j
// would complete a mutual dyad.
func Reciprocity(g *digraph.Graph, i, j int) float64 {
	if g.IsArc(j, i) {
		return 1
	}
	return 0
}

// Sink is the change in the number of sink nodes (in-degree > 0,
// out-degree 0): i->j makes j a sink if j was isolated, and stops i being
// a sink if i had in-arcs and no out-arcs.
func Sink(g *digraph.Graph, i, j int) float64 {
	var delta float64
	if g.OutDegree(j) == 0 && g.InDegree(j) == 0 {
		delta++
	}
	if g.OutDegree(i) == 0 && g.InDegree(i) > 0 {
		delta--
	}
	return delta
}

// Source is the change in the number of source nodes (out-degree > 0,
// in-degree 0): i->j makes i a source if i was isolated, and stops j being
// a source if j had out-arcs and no in-arcs.
func Source(g *digraph.Graph, i, j int) float64 {
	var delta float64
	if g.OutDegree(i) == 0 && g.InDegree(i) == 0 {
		delta++
	}
	if g.InDegree(j) == 0 && g.OutDegree(j) > 0 {
		delta--
	}
	return delta
}

// InTwoStars is the change in the count of in-two-stars (pairs of arcs
// a->c, b->c into a common receiver c): the new arc i->j pairs with each
// arc already into j, so the change is j's in-degree.
func InTwoStars(g *digraph.Graph, i, j int) float64 {
	return float64(g.InDegree(j))
}

// OutTwoStars is the change in the count of out-two-stars (pairs of arcs
// c->a, c->b from a common sender c): the new arc i->j pairs with each
// arc already out of i, so the change is i's out-degree.
func OutTwoStars(g *digraph.Graph, i, j int) float64 {
	return float64(g.OutDegree(i))
}

// TransitiveTriad is the change in the count of transitive triads
// (a->b, a->k, k->b). The new arc i->j can play each of the three roles:
// it closes every two-path i->k->j (mixed two-paths), it is the a->k leg
// for every node both i and j send to (out two-paths), and it is the k->b
// leg for every node sending to both i and j (in two-paths).
func TransitiveTriad(g *digraph.Graph, i, j int) float64 {
	return float64(g.MixedTwoPaths(i, j) + g.OutTwoPaths(i, j) + g.InTwoPaths(i, j))
}

// CyclicTriad is the change in cyclic-triad count: the number of nodes k
// with j->k->i already present, each forming a 3-cycle once i->j is added.
func CyclicTriad(g *digraph.Graph, i, j int) float64 {
	return float64(g.MixedTwoPaths(j, i))
}

// altKTrianglesLambda is the fixed geometric-decay rate lambda used by
// every alternating statistic in this file; Spec.Alpha is not consulted.
// It matches the commonly used EstimNetDirected default.
const altKTrianglesLambda = 2.0

// AltKTrianglesT ("transitive") is the change in Hunter & Handcock's
// alternating-k-triangle statistic, transitive orientation: the sum over
// arcs a->b of lambda*(1-(1-1/lambda)^m), m the number of two-paths
// a->k->b. Adding i->j contributes its own term, and raises m by one for
// each arc i->v with j->v and each arc v->j with v->i, each such arc
// gaining (1-1/lambda)^m.
func AltKTrianglesT(g *digraph.Graph, i, j int) float64 {
	r := 1 - 1/altKTrianglesLambda
	delta := altKStarWeight(g.MixedTwoPaths(i, j))
	for _, v := range g.OutNeighbours(i) {
		if v != j && g.IsArc(j, v) {
			delta += math.Pow(r, float64(g.MixedTwoPaths(i, v)))
		}
	}
	for _, v := range g.InNeighbours(i) {
		if v != j && g.IsArc(v, j) {
			delta += math.Pow(r, float64(g.MixedTwoPaths(v, j)))
		}
	}
	return delta
}

// AltKTrianglesC ("cyclic") is the cyclic-orientation counterpart of
// AltKTrianglesT: the sum over arcs a->b of lambda*(1-(1-1/lambda)^m), m
// the number of two-paths b->k->a.
func AltKTrianglesC(g *digraph.Graph, i, j int) float64 {
	r := 1 - 1/altKTrianglesLambda
	delta := altKStarWeight(g.MixedTwoPaths(j, i))
	for _, v := range g.OutNeighbours(j) {
		if v != i && g.IsArc(v, i) {
			delta += math.Pow(r, float64(g.MixedTwoPaths(i, v))) + math.Pow(r, float64(g.MixedTwoPaths(v, j)))
		}
	}
	return delta
}

// AltInStars is the change in the alternating-k-in-star statistic: the
// alternating weight of j's current in-degree.
func AltInStars(g *digraph.Graph, i, j int) float64 {
	return altKStarWeight(g.InDegree(j))
}

// AltOutStars is the change in the alternating-k-out-star statistic: the
// alternating weight of i's current out-degree.
func AltOutStars(g *digraph.Graph, i, j int) float64 {
	return altKStarWeight(g.OutDegree(i))
}

// AltTwoPathsT is the change in the alternating two-path statistic, the
// sum over ordered pairs (a,b) of lambda*(1-(1-1/lambda)^m), m the number
// of two-paths a->k->b, irrespective of closure. Adding i->j creates the
// two-paths i->j->v and v->i->j, each raising its pair's term by
// (1-1/lambda)^m.
func AltTwoPathsT(g *digraph.Graph, i, j int) float64 {
	r := 1 - 1/altKTrianglesLambda
	var delta float64
	for _, v := range g.OutNeighbours(j) {
		if v != i {
			delta += math.Pow(r, float64(g.MixedTwoPaths(i, v)))
		}
	}
	for _, v := range g.InNeighbours(i) {
		if v != j {
			delta += math.Pow(r, float64(g.MixedTwoPaths(v, j)))
		}
	}
	return delta
}

// altKStarWeight computes lambda*(1 - (1 - 1/lambda)^t), the standard
// alternating-statistic closed form for a count t (a degree or a two-path
// count), giving diminishing marginal weight to each additional unit.
func altKStarWeight(t int) float64 {
	if t == 0 {
		return 0
	}
	lambda := altKTrianglesLambda
	return lambda * (1 - math.Pow(1-1/lambda, float64(t)))
}
