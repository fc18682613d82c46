package config

import (
	"github.com/grafestim/ergmee/changestat"
	"github.com/grafestim/ergmee/digraph"
)

var structuralFuncs = map[string]changestat.StructuralFunc{
	"Arc":             changestat.Arc,
	"Reciprocity":     changestat.Reciprocity,
	"Sink":            changestat.Sink,
	"Source":          changestat.Source,
	"InTwoStars":      changestat.InTwoStars,
	"OutTwoStars":     changestat.OutTwoStars,
	"TransitiveTriad": changestat.TransitiveTriad,
	"CyclicTriad":     changestat.CyclicTriad,
	"AltKTrianglesT":  changestat.AltKTrianglesT,
	"AltKTrianglesC":  changestat.AltKTrianglesC,
	"AltInStars":      changestat.AltInStars,
	"AltOutStars":     changestat.AltOutStars,
	"AltTwoPathsT":    changestat.AltTwoPathsT,
}

var attributeFuncs = map[string]changestat.AttributeFunc{
	"Sender":             changestat.Sender,
	"Receiver":           changestat.Receiver,
	"Interaction":        changestat.Interaction,
	"Matching":           changestat.Matching,
	"Mismatching":        changestat.Mismatching,
	"ContinuousSender":   changestat.ContinuousSender,
	"ContinuousReceiver": changestat.ContinuousReceiver,
	"Diff":               changestat.Diff,
}

var dyadicFuncs = map[string]changestat.DyadicFunc{
	"GeoDistance": changestat.GeoDistance,
}

var interactionFuncs = map[string]changestat.InteractionFunc{
	"MatchingInteraction": changestat.MatchingInteraction,
}

// attrKindOf reports which of bin/cat/cont attribute name-tables fn's
// attribute argument is expected to index into, so BuildRegistry can
// resolve the right column index.
var attrKindOf = map[string]string{
	"Sender":             "bin",
	"Receiver":           "bin",
	"Interaction":        "bin",
	"Matching":           "cat",
	"Mismatching":        "cat",
	"ContinuousSender":   "cont",
	"ContinuousReceiver": "cont",
	"Diff":               "cont",
}

// BuildRegistry resolves cfg's parsed statistic names against the
// reference change-statistic library, and attribute names against g's
// attached attribute tables, erroring on any name neither recognises.
func BuildRegistry(cfg Config, g *digraph.Graph) (*changestat.Registry, error) {
	reg := &changestat.Registry{}

	for _, name := range cfg.StructParams {
		fn, ok := structuralFuncs[name]
		if !ok {
			return nil, errf("unknown structural statistic %q", name)
		}
		reg.Specs = append(reg.Specs, changestat.Spec{Kind: changestat.Structural, Name: name, Structural: fn})
	}

	for _, p := range cfg.AttrParams {
		fn, ok := attributeFuncs[p.FuncName]
		if !ok {
			return nil, errf("unknown attribute statistic %q", p.FuncName)
		}
		idx, err := resolveAttrIndex(g, attrKindOf[p.FuncName], p.AttrName)
		if err != nil {
			return nil, err
		}
		reg.Specs = append(reg.Specs, changestat.Spec{
			Kind: changestat.Attribute, Name: p.FuncName, AttrIndex: idx, Attribute: fn,
		})
	}

	for _, p := range cfg.DyadicParams {
		fn, ok := dyadicFuncs[p.FuncName]
		if !ok {
			return nil, errf("unknown dyadic statistic %q", p.FuncName)
		}
		idx1, err := resolveAttrIndex(g, "cont", p.AttrName1)
		if err != nil {
			return nil, err
		}
		idx2, err := resolveAttrIndex(g, "cont", p.AttrName2)
		if err != nil {
			return nil, err
		}
		reg.Specs = append(reg.Specs, changestat.Spec{
			Kind: changestat.Dyadic, Name: p.FuncName, AttrIndex: idx1, AttrIndex2: idx2, Dyadic: fn,
		})
	}

	for _, p := range cfg.AttrInteractionParams {
		fn, ok := interactionFuncs[p.FuncName]
		if !ok {
			return nil, errf("unknown attribute-interaction statistic %q", p.FuncName)
		}
		idx1, err := resolveAttrIndex(g, "cat", p.AttrName1)
		if err != nil {
			return nil, err
		}
		idx2, err := resolveAttrIndex(g, "cat", p.AttrName2)
		if err != nil {
			return nil, err
		}
		reg.Specs = append(reg.Specs, changestat.Spec{
			Kind: changestat.AttrInteraction, Name: p.FuncName, AttrIndex: idx1, AttrIndex2: idx2, Interaction: fn,
		})
	}

	return reg, nil
}

func resolveAttrIndex(g *digraph.Graph, kind, name string) (int, error) {
	var names []string
	switch kind {
	case "bin":
		names = g.BinAttrNames()
	case "cat":
		names = g.CatAttrNames()
	case "cont":
		names = g.ContAttrNames()
	}
	for k, n := range names {
		if n == name {
			return k, nil
		}
	}
	return 0, errf("unknown %s attribute %q", kind, name)
}
