package sample

import (
	"fmt"
	"strings"
)

// DefaultNonDetectMarker is the token laboratories report for results below the limit of detection.
const DefaultNonDetectMarker = "<LOD"

// Substitution decides the value that stands in for a non-detect.
type Substitution interface {
	Substitute() float64
	Name() string
}

// Zero substitutes 0 for every non-detect.
type Zero struct{}

func (Zero) Substitute() float64 { return 0 }
func (Zero) Name() string        { return "zero" }

// HalfLOD substitutes half the limit of detection.
type HalfLOD struct{ LOD float64 }

func (h HalfLOD) Substitute() float64 { return h.LOD / 2 }
func (HalfLOD) Name() string          { return "half-lod" }

// AtLOD substitutes the limit of detection itself.
type AtLOD struct{ LOD float64 }

func (a AtLOD) Substitute() float64 { return a.LOD }
func (AtLOD) Name() string          { return "lod" }

// ParsePolicy maps a policy name to a Substitution. The LOD policies require lod > 0.
func ParsePolicy(name string, lod float64) (Substitution, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "zero":
		return Zero{}, nil
	case "half-lod", "half_lod", "lod/2":
		if lod <= 0 {
			return nil, fmt.Errorf("nondetect policy %q requires a positive lod, got %v", name, lod)
		}
		return HalfLOD{LOD: lod}, nil
	case "lod":
		if lod <= 0 {
			return nil, fmt.Errorf("nondetect policy %q requires a positive lod, got %v", name, lod)
		}
		return AtLOD{LOD: lod}, nil
	default:
		return nil, fmt.Errorf("unknown nondetect policy: %s (use zero, half-lod or lod)", name)
	}
}
