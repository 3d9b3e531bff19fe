package analysis

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Verdict is the outcome of a screening-level comparison.
type Verdict int

const (
	Undefined Verdict = iota
	Below
	Exceeds
)

func (v Verdict) String() string {
	switch v {
	case Below:
		return "below"
	case Exceeds:
		return "exceeds"
	default:
		return "undefined"
	}
}

// Compare checks an average against a screening level. Only a strictly
// greater average exceeds it.
func Compare(avg Average, level float64) Verdict {
	if !avg.Defined() {
		return Undefined
	}
	if avg.Value > level {
		return Exceeds
	}
	return Below
}

// WriteAverageReport prints the average and the screening comparison.
func WriteAverageReport(w io.Writer, label, unit string, avg Average, maxDistance, level float64) error {
	if !avg.Defined() {
		_, err := fmt.Fprintf(w, "Average %s concentration within %g mile: undefined (no usable samples; %d in range, %d excluded)\n",
			label, maxDistance, avg.InRange, avg.Excluded)
		return err
	}
	if _, err := fmt.Fprintf(w, "Average %s concentration within %g mile: %.2f %s\n", label, maxDistance, avg.Value, unit); err != nil {
		return err
	}
	msg := "Below"
	if Compare(avg, level) == Exceeds {
		msg = "Exceeds"
	}
	_, err := fmt.Fprintf(w, "%s EPA screening level (%s %s)\n", msg, FormatLevel(level), unit)
	return err
}

// FormatLevel prints whole levels with one decimal (700.0) and keeps every
// digit of fractional ones.
func FormatLevel(level float64) string {
	if level == math.Trunc(level) && !math.IsInf(level, 0) {
		return strconv.FormatFloat(level, 'f', 1, 64)
	}
	return strconv.FormatFloat(level, 'f', -1, 64)
}

// WriteSummaryReport prints one "key: value" line per statistic in SummaryKeys order.
func WriteSummaryReport(w io.Writer, column string, s Summary) error {
	if _, err := fmt.Fprintf(w, "Summary for %s (%d of %d rows numeric)\n", column, s.Count, s.Rows); err != nil {
		return err
	}
	m := s.Map()
	for _, k := range SummaryKeys {
		val := "n/a"
		switch v := m[k].(type) {
		case float64:
			val = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			val = fmt.Sprintf("%d", v)
		}
		if _, err := fmt.Fprintf(w, "  %s: %s\n", k, val); err != nil {
			return err
		}
	}
	return nil
}
