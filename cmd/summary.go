package cmd

import (
	"github.com/KaramelBytes/contamstat/internal/analysis"
	"github.com/KaramelBytes/contamstat/internal/logging"
	"github.com/KaramelBytes/contamstat/internal/table"
	"github.com/spf13/cobra"
)

var (
	sumColumn    string
	sumNonDetect nonDetectFlags
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Mean, median, std, count, max and min for one contaminant column",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DataPath
		if len(args) == 1 {
			path = args[0]
		}
		column := cfg.ContaminantColumn
		if cmd.Flags().Changed("column") {
			column = sumColumn
		}
		co, err := sumNonDetect.coercer(cmd)
		if err != nil {
			return err
		}

		log := logging.WithRun("summary", "file", path, "column", column)
		t, err := table.Load(path)
		if err != nil {
			return err
		}
		s, err := analysis.Summarize(t, column, co)
		if err != nil {
			return err
		}
		if s.Count < s.Rows {
			log.Debug("excluded non-numeric cells", "missing", s.Rows-s.Count, "rows", s.Rows)
		}
		return analysis.WriteSummaryReport(cmd.OutOrStdout(), table.NormalizeName(column), s)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumColumn, "column", "c", "", "contaminant column (overrides config)")
	sumNonDetect.register(summaryCmd)
}
