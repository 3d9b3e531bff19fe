package analysis

import (
	"github.com/KaramelBytes/contamstat/internal/sample"
	"github.com/KaramelBytes/contamstat/internal/table"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SummaryKeys is the fixed key order of a statistics bundle.
var SummaryKeys = []string{"mean", "median", "std", "count", "max", "min"}

// Summary is the statistics bundle of one contaminant column. Missing readings
// are excluded from every statistic; Count is the number of present readings.
type Summary struct {
	Mean   sample.Reading
	Median sample.Reading
	// Std is the sample standard deviation (n-1), missing below two readings.
	Std   sample.Reading
	Count int
	Max   sample.Reading
	Min   sample.Reading
	// Rows is the total number of rows, present or not.
	Rows int
}

// Map returns the bundle keyed by SummaryKeys. Missing statistics are nil.
func (s Summary) Map() map[string]any {
	opt := func(r sample.Reading) any {
		if v, ok := r.Value(); ok {
			return v
		}
		return nil
	}
	return map[string]any{
		"mean":   opt(s.Mean),
		"median": opt(s.Median),
		"std":    opt(s.Std),
		"count":  s.Count,
		"max":    opt(s.Max),
		"min":    opt(s.Min),
	}
}

// Summarize coerces column in place and computes its statistics over the
// whole table. After the call the column is numeric; callers that need the
// raw cells must pass a Clone.
func Summarize(t *table.Table, column string, c sample.Coercer) (Summary, error) {
	rs, err := t.Readings(column, c)
	if err != nil {
		return Summary{}, err
	}
	if err := t.SetNumeric(column, rs); err != nil {
		return Summary{}, err
	}
	return Describe(rs), nil
}

// Describe computes the bundle over readings without touching any table.
func Describe(rs []sample.Reading) Summary {
	vals := sample.Present(rs)
	s := Summary{Count: len(vals), Rows: len(rs)}
	if len(vals) == 0 {
		return s
	}
	s.Mean = sample.Of(stat.Mean(vals, nil))
	if m, err := stats.Median(stats.Float64Data(vals)); err == nil {
		s.Median = sample.Of(m)
	}
	if len(vals) > 1 {
		s.Std = sample.Of(stat.StdDev(vals, nil))
	}
	s.Max = sample.Of(floats.Max(vals))
	s.Min = sample.Of(floats.Min(vals))
	return s
}
