package sample

import (
	"math"
	"strconv"
	"strings"
)

// Coercer turns raw laboratory cells into readings. Cells equal to Marker are
// non-detects and take the Policy value; anything else that is not a finite
// number becomes missing.
type Coercer struct {
	Marker string
	Policy Substitution
}

// DefaultCoercer treats "<LOD" as zero.
func DefaultCoercer() Coercer {
	return Coercer{Marker: DefaultNonDetectMarker, Policy: Zero{}}
}

// NumberCoercer parses plain numbers only.
func NumberCoercer() Coercer { return Coercer{} }

// Coerce converts one cell. It never fails.
func (c Coercer) Coerce(raw string) Reading {
	s := strings.TrimSpace(raw)
	if c.Marker != "" && s == c.Marker {
		p := c.Policy
		if p == nil {
			p = Zero{}
		}
		return Of(p.Substitute())
	}
	return ParseNumber(s)
}

// CoerceAll converts a column of cells.
func (c Coercer) CoerceAll(raw []string) []Reading {
	out := make([]Reading, len(raw))
	for i, s := range raw {
		out[i] = c.Coerce(s)
	}
	return out
}

// ParseNumber parses a decimal number. Empty, malformed and non-finite input is missing.
func ParseNumber(s string) Reading {
	s = strings.TrimSpace(s)
	if s == "" || isHex(s) {
		return Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing()
	}
	return Of(f)
}

// isHex reports a hexadecimal literal, which strconv accepts but lab exports never mean.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
