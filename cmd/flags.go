package cmd

import (
	"github.com/KaramelBytes/contamstat/internal/sample"
	"github.com/spf13/cobra"
)

// nonDetectFlags are shared by commands that coerce concentration columns.
type nonDetectFlags struct {
	marker string
	policy string
	lod    float64
}

func (f *nonDetectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.marker, "marker", "", "non-detect marker (overrides config, default \"<LOD\")")
	cmd.Flags().StringVar(&f.policy, "nondetect", "", "non-detect substitution: zero | half-lod | lod (overrides config)")
	cmd.Flags().Float64Var(&f.lod, "lod", 0, "limit of detection for half-lod/lod substitution")
}

func (f *nonDetectFlags) reset() { *f = nonDetectFlags{} }

// coercer merges config with any flags set on this invocation.
func (f *nonDetectFlags) coercer(cmd *cobra.Command) (sample.Coercer, error) {
	eff := *cfg
	if cmd.Flags().Changed("marker") {
		eff.NonDetectMarker = f.marker
	}
	if cmd.Flags().Changed("nondetect") {
		eff.NonDetectPolicy = f.policy
	}
	if cmd.Flags().Changed("lod") {
		eff.LOD = f.lod
	}
	return eff.Coercer()
}
