// Package config materializes CLI configuration from defaults, an optional
// config file, SNAPGRID_* environment variables, and command-line flags, in
// ascending precedence. The library itself takes settings as plain values;
// everything file- and environment-shaped stays here.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/snapgrid/snapgrid"
	"github.com/snapgrid/snapgrid/pipeline"
	"github.com/snapgrid/snapgrid/units"
)

// EnvPrefix is the prefix for environment variable overrides
// (e.g. SNAPGRID_MODE=table).
const EnvPrefix = "SNAPGRID"

// Config holds everything the CLI needs for one invocation.
type Config struct {
	// Mode is the reconstruction mode: "auto", "table", or "text".
	Mode string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// MinConfidence drops fragments below this recognition confidence.
	MinConfidence float64

	// Language is the recognition language passed to the OCR engine.
	Language string

	// Settings is the cell-processing configuration.
	Settings pipeline.Settings
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:          "auto",
		LogLevel:      "info",
		MinConfidence: 0,
		Language:      "eng",
		Settings:      pipeline.DefaultSettings(),
	}
}

// SetDefaults registers every known key with its default on v, so missing
// and unknown fields in a config file mean "use default" rather than error.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("mode", def.Mode)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("min_confidence", def.MinConfidence)
	v.SetDefault("language", def.Language)

	v.SetDefault("apply_threshold", def.Settings.ApplyThreshold)
	v.SetDefault("threshold_value", def.Settings.ThresholdValue)
	v.SetDefault("threshold_replace_with", def.Settings.ThresholdReplaceWith)
	v.SetDefault("apply_unit_conversion", def.Settings.ApplyUnitConversion)
	v.SetDefault("target_unit_prefix", string(def.Settings.TargetUnitPrefix))
	v.SetDefault("split_value_unit", def.Settings.SplitValueUnit)
	v.SetDefault("notation_style", string(def.Settings.NotationStyle))
	v.SetDefault("precision", def.Settings.Precision)
	v.SetDefault("copy_strategy", string(def.Settings.CopyStrategy))
}

// BindFlags wires command-line flags into v. Flags use dashes where the
// config keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	bind := func(key, flag string) {
		if f := flags.Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
	bind("mode", "mode")
	bind("log_level", "log-level")
	bind("min_confidence", "min-confidence")
	bind("language", "lang")
	bind("apply_threshold", "threshold")
	bind("threshold_value", "threshold-value")
	bind("threshold_replace_with", "threshold-replace-with")
	bind("apply_unit_conversion", "convert")
	bind("target_unit_prefix", "target-prefix")
	bind("split_value_unit", "split")
	bind("notation_style", "notation")
	bind("precision", "precision")
	bind("copy_strategy", "copy")
}

// Load reads a validated Config out of v. SetDefaults must have been called
// on v first.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Mode:          v.GetString("mode"),
		LogLevel:      v.GetString("log_level"),
		MinConfidence: v.GetFloat64("min_confidence"),
		Language:      v.GetString("language"),
		Settings: pipeline.Settings{
			ApplyThreshold:       v.GetBool("apply_threshold"),
			ThresholdValue:       v.GetString("threshold_value"),
			ThresholdReplaceWith: v.GetString("threshold_replace_with"),
			ApplyUnitConversion:  v.GetBool("apply_unit_conversion"),
			TargetUnitPrefix:     units.Prefix(v.GetString("target_unit_prefix")),
			SplitValueUnit:       v.GetBool("split_value_unit"),
			NotationStyle:        pipeline.NotationStyle(v.GetString("notation_style")),
			Precision:            v.GetInt("precision"),
			CopyStrategy:         pipeline.CopyStrategy(v.GetString("copy_strategy")),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its declared domains.
func (c *Config) Validate() error {
	if _, err := snapgrid.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("invalid configuration: min_confidence %v outside [0,1]", c.MinConfidence)
	}
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
