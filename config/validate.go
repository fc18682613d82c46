package config

// Validate checks the contradictory-option rules from spec.md §7 that
// are decidable from the Config alone. Checks that require the loaded
// graph (snowball zone count, citation-on-undirected) are performed by
// package driver once the graph is available, since this package never
// touches pajekio.
func Validate(cfg Config) error {
	if cfg.ArclistFilename == "" {
		return errf("arclist_filename is required")
	}

	if cfg.UseIFDSampler {
		for _, name := range cfg.StructParams {
			if name == "Arc" {
				return errf("useIFDsampler=true is incompatible with an explicit \"Arc\" structural parameter")
			}
		}
	}

	if cfg.UseConditionalEstimation && cfg.ZoneFilename == "" {
		return errf("useConditionalEstimation=true requires zone_filename")
	}
	if cfg.CitationERGM && cfg.TermFilename == "" {
		return errf("citationERGM=true requires term_filename")
	}
	if cfg.UseConditionalEstimation && cfg.CitationERGM {
		return errf("useConditionalEstimation and citationERGM are mutually exclusive")
	}

	if (cfg.UseConditionalEstimation || cfg.CitationERGM) && cfg.ForbidReciprocity {
		return errf("forbidReciprocity is not allowed with snowball or citation conditional estimation")
	}
	if (cfg.UseConditionalEstimation || cfg.CitationERGM) && cfg.AllowLoops {
		return errf("allowLoops is not allowed with snowball or citation conditional estimation")
	}

	if cfg.UseBorisenkoUpdate && cfg.LearningRate <= 0 {
		return errf("useBorisenkoUpdate=true requires a positive learningRate")
	}

	return nil
}
