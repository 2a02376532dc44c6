package render

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ScaleTable maps a platform class to the fraction of viewport height used
// as the base font size. The stock values are a hand-tuned heuristic carried
// over from the original player, not a physical law; keep them overridable
// rather than folding them into the mapper.
type ScaleTable struct {
	Platforms map[string]float64 `yaml:"platforms"`
	Default   float64            `yaml:"default"`
}

// DefaultScaleTable returns the stock platform scaling constants.
func DefaultScaleTable() ScaleTable {
	return ScaleTable{
		Platforms: map[string]float64{
			"ios":     0.022,
			"android": 0.072,
		},
		Default: 0.09,
	}
}

// LoadScaleTable reads a YAML override of the scale table. Platform entries
// missing from the file keep their stock values.
func LoadScaleTable(path string) (ScaleTable, error) {
	table := DefaultScaleTable()

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return table, errors.Wrapf(readErr, "failed to read scale table %s", path)
	}

	override := ScaleTable{}
	if unmarshalErr := yaml.Unmarshal(data, &override); unmarshalErr != nil {
		return table, errors.Wrapf(unmarshalErr, "failed to parse scale table %s", path)
	}

	if override.Default > 0 {
		table.Default = override.Default
	}
	for platform, factor := range override.Platforms {
		if factor > 0 {
			table.Platforms[platform] = factor
		}
	}

	return table, nil
}

// Factor returns the scaling constant for a platform class, falling back to
// the default for platforms without an entry.
func (s ScaleTable) Factor(platform string) float64 {
	if factor, found := s.Platforms[platform]; found && factor > 0 {
		return factor
	}
	if s.Default > 0 {
		return s.Default
	}

	return DefaultScaleTable().Default
}
