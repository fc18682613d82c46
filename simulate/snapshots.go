package simulate

import (
	"os"

	"gopkg.in/yaml.v3"
)

// snapshotsDocument is the top-level shape written to a
// "<prefix>_stats.yaml" snapshot file: the active statistic names (so
// the file is self-describing) alongside the recorded snapshots.
type snapshotsDocument struct {
	StatNames []string           `yaml:"stat_names"`
	Snapshots []NetworkSnapshot `yaml:"snapshots"`
}

// WriteSnapshots marshals snapshots to YAML at "<prefix>_stats.yaml",
// tagging each row with statNames for self-describing output.
func WriteSnapshots(prefix string, statNames []string, snapshots []NetworkSnapshot) error {
	doc := snapshotsDocument{StatNames: statNames, Snapshots: snapshots}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(prefix+"_stats.yaml", out, 0o644)
}
