package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/contamstat/internal/analysis"
	"github.com/KaramelBytes/contamstat/internal/sample"
	"github.com/KaramelBytes/contamstat/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataPath          string `mapstructure:"data_path" yaml:"data_path"`
	ContaminantColumn string `mapstructure:"contaminant_column" yaml:"contaminant_column"`
	ContaminantLabel  string `mapstructure:"contaminant_label" yaml:"contaminant_label"`
	DistanceColumn    string `mapstructure:"distance_column" yaml:"distance_column"`
	Unit              string `mapstructure:"unit" yaml:"unit"`

	// Non-detect handling
	NonDetectMarker string  `mapstructure:"nondetect_marker" yaml:"nondetect_marker"`
	NonDetectPolicy string  `mapstructure:"nondetect_policy" yaml:"nondetect_policy"`
	LOD             float64 `mapstructure:"lod" yaml:"lod"`

	ScreeningLevel float64 `mapstructure:"screening_level" yaml:"screening_level"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Defaults returns the ethylbenzene workflow settings used when nothing is configured.
func Defaults() Global {
	return Global{
		DataPath:          filepath.Join("data", "processed", "water_samples_2023.csv"),
		ContaminantColumn: analysis.DefaultConcentrationColumn,
		ContaminantLabel:  "ethylbenzene",
		DistanceColumn:    analysis.DefaultDistanceColumn,
		Unit:              "μg/L",
		NonDetectMarker:   sample.DefaultNonDetectMarker,
		NonDetectPolicy:   "zero",
		ScreeningLevel:    analysis.DefaultScreeningLevel,
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

// Coercer builds the concentration coercer described by the non-detect settings.
func (c *Global) Coercer() (sample.Coercer, error) {
	p, err := sample.ParsePolicy(c.NonDetectPolicy, c.LOD)
	if err != nil {
		return sample.Coercer{}, err
	}
	return sample.Coercer{Marker: c.NonDetectMarker, Policy: p}, nil
}

// Validate reports settings that cannot produce a meaningful run.
func (c *Global) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ContaminantColumn) == "" {
		errs = append(errs, errors.New("contaminant_column is empty"))
	}
	if strings.TrimSpace(c.DistanceColumn) == "" {
		errs = append(errs, errors.New("distance_column is empty"))
	}
	if strings.TrimSpace(c.NonDetectMarker) == "" {
		errs = append(errs, errors.New("nondetect_marker is empty"))
	}
	if c.ScreeningLevel < 0 {
		errs = append(errs, fmt.Errorf("screening_level must not be negative: %v", c.ScreeningLevel))
	}
	if _, err := sample.ParsePolicy(c.NonDetectPolicy, c.LOD); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.contamstat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (including .env) > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	// .env in the working directory is optional; existing env vars win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CONTAMSTAT")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("data_path", d.DataPath)
	v.SetDefault("contaminant_column", d.ContaminantColumn)
	v.SetDefault("contaminant_label", d.ContaminantLabel)
	v.SetDefault("distance_column", d.DistanceColumn)
	v.SetDefault("unit", d.Unit)
	v.SetDefault("nondetect_marker", d.NonDetectMarker)
	v.SetDefault("nondetect_policy", d.NonDetectPolicy)
	v.SetDefault("lod", d.LOD)
	v.SetDefault("screening_level", d.ScreeningLevel)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional file; a malformed one is still an error
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".contamstat"), nil
}
