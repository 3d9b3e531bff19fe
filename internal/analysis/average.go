package analysis

import (
	"math"

	"github.com/KaramelBytes/contamstat/internal/sample"
	"github.com/KaramelBytes/contamstat/internal/table"
	"gonum.org/v1/gonum/stat"
)

// Average is the result of NearSourceAverage.
type Average struct {
	// Value is NaN when no row contributed.
	Value float64
	// Count is the number of readings averaged.
	Count int
	// InRange is the number of rows within the distance cutoff.
	InRange int
	// Excluded counts in-range rows dropped because the concentration was missing.
	Excluded int
}

// Defined reports whether at least one reading contributed.
func (a Average) Defined() bool { return a.Count > 0 }

// NearSourceAverage averages the concentration column over rows whose distance
// is at most opt.MaxDistanceMiles. Non-detects are substituted per opt.Coercer;
// rows whose concentration is still missing are dropped from the average.
// Rows with a missing distance are never in range. t is not modified.
func NearSourceAverage(t *table.Table, opt Options) (Average, error) {
	if _, err := t.Column(opt.ConcentrationColumn); err != nil {
		return Average{}, err
	}
	dist, err := t.Readings(opt.DistanceColumn, sample.NumberCoercer())
	if err != nil {
		return Average{}, err
	}

	near := t.Filter(func(i int) bool {
		d, ok := dist[i].Value()
		return ok && d <= opt.MaxDistanceMiles
	})
	conc, err := near.Readings(opt.ConcentrationColumn, opt.Coercer)
	if err != nil {
		return Average{}, err
	}
	vals := sample.Present(conc)

	avg := Average{Count: len(vals), InRange: near.Len(), Excluded: near.Len() - len(vals)}
	if len(vals) == 0 {
		avg.Value = math.NaN()
		return avg, nil
	}
	avg.Value = stat.Mean(vals, nil)
	return avg, nil
}
