package changestat

import "github.com/grafestim/ergmee/digraph"

// Kind tags which of a Spec's function fields is populated.
type Kind int

const (
	Structural Kind = iota
	Attribute
	Dyadic
	AttrInteraction
)

// StructuralFunc computes the change in a purely structural statistic
// from adding arc i->j to g.
type StructuralFunc func(g *digraph.Graph, i, j int) float64

// AttributeFunc computes the change in a statistic that reads one named
// node attribute (by index into the relevant attribute table).
type AttributeFunc func(g *digraph.Graph, i, j, attrIndex int) float64

// DyadicFunc computes the change in a statistic driven by a pair of
// continuous node attributes treated as dyadic covariates (e.g. a
// great-circle distance between two lat/long pairs).
type DyadicFunc func(g *digraph.Graph, i, j, attrIndex, attrIndex2 int) float64

// InteractionFunc computes the change in a statistic combining two
// attributes of the same node pair (e.g. matching on attribute A AND
// attribute B simultaneously).
type InteractionFunc func(g *digraph.Graph, i, j, attrIndex, attrIndex2 int) float64

// Spec names one active change statistic and, for attribute/dyadic/
// interaction kinds, which attribute column(s) it reads. Exactly one of
// the function fields is used, selected by Kind.
type Spec struct {
	Kind  Kind
	Name  string
	Alpha float64 // decay parameter slot; no change-statistic function reads it

	AttrIndex  int
	AttrIndex2 int

	Structural  StructuralFunc
	Attribute   AttributeFunc
	Dyadic      DyadicFunc
	Interaction InteractionFunc
}

// eval dispatches s against g for the candidate arc i->j.
func (s Spec) eval(g *digraph.Graph, i, j int) float64 {
	switch s.Kind {
	case Structural:
		return s.Structural(g, i, j)
	case Attribute:
		return s.Attribute(g, i, j, s.AttrIndex)
	case Dyadic:
		return s.Dyadic(g, i, j, s.AttrIndex, s.AttrIndex2)
	case AttrInteraction:
		return s.Interaction(g, i, j, s.AttrIndex, s.AttrIndex2)
	default:
		panic("changestat: unknown Spec.Kind")
	}
}

// Registry is the ordered set of statistics active for an estimation or
// simulation task. Index l in Specs corresponds to theta[l] and out[l]
// everywhere in this package and in ee/sampler/propose.
type Registry struct {
	Specs []Spec
}

// CalcChangeStats evaluates every Spec in reg for the candidate arc i->j,
// writes each raw change statistic into out (len(out) must equal
// len(reg.Specs)), and returns the weighted sum sum(theta[l]*out[l]), the
// contribution to the Metropolis-Hastings log-acceptance-ratio for this
// move. If isDelete is true, the arc is being proposed for removal rather
// than addition: the raw statistics are still computed for the forward
// (addition) direction, matching the convention used throughout the
// sampler package, so callers combine add- and delete-side results
// themselves rather than this function negating anything internally.
func CalcChangeStats(g *digraph.Graph, i, j int, reg *Registry, theta []float64, isDelete bool, out []float64) float64 {
	var total float64
	for l, spec := range reg.Specs {
		v := spec.eval(g, i, j)
		out[l] = v
		total += theta[l] * v
	}
	_ = isDelete // retained for call-site symmetry with the sampler's add/delete branches
	return total
}

// EmptyGraphStats returns the sufficient-statistic totals of g: the sum
// of change statistics that would be accrued inserting g's current arcs
// one at a time into an otherwise-identical empty graph. This is the
// network-level statistic itself, not a single-move change statistic,
// and is what simulation mode reports as a running snapshot.
func EmptyGraphStats(g *digraph.Graph, reg *Registry) []float64 {
	scratch := g.Clone()
	arcs := make([][2]int, g.NumArcs())
	for k := range arcs {
		i, j := g.ArcAt(k)
		arcs[k] = [2]int{i, j}
		_ = scratch.RemoveArc(i, j)
	}

	totals := make([]float64, len(reg.Specs))
	for _, a := range arcs {
		for l, spec := range reg.Specs {
			totals[l] += spec.eval(scratch, a[0], a[1])
		}
		_ = scratch.InsertArc(a[0], a[1])
	}
	return totals
}
