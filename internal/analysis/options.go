// Package analysis reduces water-sample tables to contaminant statistics.
package analysis

import "github.com/KaramelBytes/contamstat/internal/sample"

const (
	// DefaultConcentrationColumn holds ethylbenzene results in micrograms per liter.
	DefaultConcentrationColumn = "ethylbenzene_ugl"
	// DefaultDistanceColumn holds the precomputed distance to the nearest drilling site in miles.
	DefaultDistanceColumn = "distance_miles"
	// DefaultMaxDistanceMiles is the inclusive near-source cutoff.
	DefaultMaxDistanceMiles = 1.0
	// DefaultScreeningLevel is the EPA screening level for ethylbenzene in μg/L.
	DefaultScreeningLevel = 700.0
)

// Options controls the near-source average.
type Options struct {
	ConcentrationColumn string
	DistanceColumn      string
	// MaxDistanceMiles is inclusive: rows at exactly this distance are kept.
	MaxDistanceMiles float64
	// Coercer converts concentration cells; non-detects follow its policy.
	Coercer sample.Coercer
}

// DefaultOptions returns the ethylbenzene, one-mile, non-detect-as-zero setup.
func DefaultOptions() Options {
	return Options{
		ConcentrationColumn: DefaultConcentrationColumn,
		DistanceColumn:      DefaultDistanceColumn,
		MaxDistanceMiles:    DefaultMaxDistanceMiles,
		Coercer:             sample.DefaultCoercer(),
	}
}
