package sample

import "strconv"

// Reading is a single measured value that may be missing.
type Reading struct {
	v     float64
	valid bool
}

// Of returns a present reading.
func Of(v float64) Reading { return Reading{v: v, valid: true} }

// Missing returns an absent reading.
func Missing() Reading { return Reading{} }

// Value returns the number and whether it is present.
func (r Reading) Value() (float64, bool) { return r.v, r.valid }

// Valid reports whether the reading holds a number.
func (r Reading) Valid() bool { return r.valid }

func (r Reading) String() string {
	if !r.valid {
		return "n/a"
	}
	return strconv.FormatFloat(r.v, 'g', -1, 64)
}

// Present collects the numbers of all present readings, preserving order.
func Present(rs []Reading) []float64 {
	out := make([]float64, 0, len(rs))
	for _, r := range rs {
		if r.valid {
			out = append(out, r.v)
		}
	}
	return out
}
