package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/contamstat/internal/analysis"
	cfgpkg "github.com/KaramelBytes/contamstat/internal/config"
	"github.com/KaramelBytes/contamstat/internal/sample"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set contamstat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "data_path: %s\n", cfg.DataPath)
		fmt.Fprintf(out, "contaminant_column: %s\n", cfg.ContaminantColumn)
		fmt.Fprintf(out, "contaminant_label: %s\n", cfg.ContaminantLabel)
		fmt.Fprintf(out, "distance_column: %s\n", cfg.DistanceColumn)
		fmt.Fprintf(out, "unit: %s\n", cfg.Unit)
		fmt.Fprintf(out, "nondetect_marker: %s\n", cfg.NonDetectMarker)
		fmt.Fprintf(out, "nondetect_policy: %s\n", cfg.NonDetectPolicy)
		if cfg.LOD > 0 {
			fmt.Fprintf(out, "lod: %g\n", cfg.LOD)
		}
		fmt.Fprintf(out, "screening_level: %s\n", analysis.FormatLevel(cfg.ScreeningLevel))
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		next := *cfg
		switch key {
		case "data_path":
			next.DataPath = val
		case "contaminant_column":
			next.ContaminantColumn = val
		case "contaminant_label":
			next.ContaminantLabel = val
		case "distance_column":
			next.DistanceColumn = val
		case "unit":
			next.Unit = val
		case "nondetect_marker":
			next.NonDetectMarker = val
		case "nondetect_policy":
			if _, err := sample.ParsePolicy(val, 1); err != nil {
				return err
			}
			p, err := sample.ParsePolicy(val, next.LOD)
			if err != nil {
				return fmt.Errorf("%w; set lod first (contamstat config set lod <value>)", err)
			}
			next.NonDetectPolicy = p.Name()
		case "lod":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid float for lod: %v", val)
			}
			next.LOD = f
		case "screening_level":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for screening_level: %w", err)
			}
			next.ScreeningLevel = f
		case "log_level":
			switch strings.ToLower(val) {
			case "debug", "info", "warn", "error":
				next.LogLevel = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
			}
		case "log_format":
			switch strings.ToLower(val) {
			case "text", "json":
				next.LogFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := next.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		cfg = &next
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
