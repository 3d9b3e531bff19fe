package cmd

import (
	"fmt"

	"github.com/KaramelBytes/contamstat/internal/analysis"
	"github.com/KaramelBytes/contamstat/internal/logging"
	"github.com/KaramelBytes/contamstat/internal/table"
	"github.com/spf13/cobra"
)

var (
	avgColumn         string
	avgDistanceColumn string
	avgLabel          string
	avgLevel          float64
	avgNonDetect      nonDetectFlags
)

var averageCmd = &cobra.Command{
	Use:   "average [file]",
	Short: "Average concentration within one mile and compare with the EPA screening level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DataPath
		if len(args) == 1 {
			path = args[0]
		}
		opt := analysis.DefaultOptions()
		opt.ConcentrationColumn = cfg.ContaminantColumn
		opt.DistanceColumn = cfg.DistanceColumn
		label, level := cfg.ContaminantLabel, cfg.ScreeningLevel
		f := cmd.Flags()
		if f.Changed("column") {
			opt.ConcentrationColumn = avgColumn
		}
		if f.Changed("distance-column") {
			opt.DistanceColumn = avgDistanceColumn
		}
		if f.Changed("label") {
			label = avgLabel
		}
		if f.Changed("screening-level") {
			if avgLevel < 0 {
				return fmt.Errorf("invalid --screening-level: %v", avgLevel)
			}
			level = avgLevel
		}
		co, err := avgNonDetect.coercer(cmd)
		if err != nil {
			return err
		}
		opt.Coercer = co

		log := logging.WithRun("average", "file", path, "column", opt.ConcentrationColumn)
		t, err := table.Load(path)
		if err != nil {
			return err
		}
		log.Debug("loaded samples", "rows", t.Len(), "columns", t.Names())

		avg, err := analysis.NearSourceAverage(t, opt)
		if err != nil {
			return err
		}
		switch {
		case !avg.Defined():
			log.Warn("average undefined: no usable samples within cutoff",
				"max_distance_miles", opt.MaxDistanceMiles, "in_range", avg.InRange, "excluded", avg.Excluded)
		case avg.Excluded > 0:
			log.Debug("dropped in-range rows with unparseable concentration", "excluded", avg.Excluded)
		}
		log.Debug("computed average", "value", avg.Value, "count", avg.Count,
			"nondetect_policy", co.Policy.Name(), "verdict", analysis.Compare(avg, level).String())
		return analysis.WriteAverageReport(cmd.OutOrStdout(), label, cfg.Unit, avg, opt.MaxDistanceMiles, level)
	},
}

func init() {
	rootCmd.AddCommand(averageCmd)
	averageCmd.Flags().StringVar(&avgColumn, "column", "", "concentration column (overrides config, default ethylbenzene_ugl)")
	averageCmd.Flags().StringVar(&avgDistanceColumn, "distance-column", "", "distance column in miles (overrides config)")
	averageCmd.Flags().StringVar(&avgLabel, "label", "", "contaminant name used in the report")
	averageCmd.Flags().Float64Var(&avgLevel, "screening-level", 0, "screening level to compare against (default 700)")
	avgNonDetect.register(averageCmd)
}
