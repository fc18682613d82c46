package pajekio

import (
	"github.com/grafestim/ergmee/config"
	"github.com/grafestim/ergmee/digraph"
)

// LoadGraph assembles a fully configured *digraph.Graph from cfg's
// arclist_filename plus whichever attribute and zone/term files cfg
// names, wiring them in as digraph.Option values.
func LoadGraph(cfg config.Config) (*digraph.Graph, error) {
	numNodes, directed, arcs, err := LoadArcList(cfg.ArclistFilename)
	if err != nil {
		return nil, err
	}

	var opts []digraph.Option

	if cfg.BinattrFilename != "" {
		names, cols, err := LoadBinaryAttrs(cfg.BinattrFilename, numNodes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, digraph.WithBinaryAttributes(names, cols))
	}
	if cfg.CatattrFilename != "" {
		names, cols, err := LoadCategoricalAttrs(cfg.CatattrFilename, numNodes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, digraph.WithCategoricalAttributes(names, cols))
	}
	if cfg.ContattrFilename != "" {
		names, cols, err := LoadContinuousAttrs(cfg.ContattrFilename, numNodes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, digraph.WithContinuousAttributes(names, cols))
	}
	if cfg.SetattrFilename != "" {
		names, cols, err := LoadSetAttrs(cfg.SetattrFilename, numNodes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, digraph.WithSetAttributes(names, cols))
	}
	if cfg.UseConditionalEstimation && cfg.ZoneFilename != "" {
		zones, err := LoadZones(cfg.ZoneFilename, numNodes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, digraph.WithSnowballZones(zones))
	}
	if cfg.CitationERGM && cfg.TermFilename != "" {
		terms, err := LoadTerms(cfg.TermFilename, numNodes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, digraph.WithCitationTerms(terms))
	}

	g := digraph.New(numNodes, directed, opts...)
	for _, a := range arcs {
		if err := g.InsertArc(a[0], a[1]); err != nil {
			return nil, &DataError{Path: cfg.ArclistFilename, Msg: err.Error()}
		}
	}
	return g, nil
}
