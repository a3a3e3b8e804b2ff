package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snapgrid/snapgrid/internal/config"
	"github.com/snapgrid/snapgrid/internal/logger"
)

var (
	cfgFile string
	version = "dev" // Set via build flags
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "snapgrid",
	Short: "Reconstruct tables and text from recognized screen captures",
	Long: `snapgrid rebuilds structure from positioned text fragments produced
by a recognition engine: a tab-separated grid when the fragments form a
table, plain text with restored spacing otherwise.

Table cells holding engineering values ("5.1k", "10nF", "1.23e-4") can be
filtered against a threshold, rescaled to a common unit prefix, split into
value and unit columns, and reformatted in scientific or engineering
notation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.snapgrid.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("mode", "auto", "reconstruction mode: auto, table, or text")
	rootCmd.PersistentFlags().Float64("min-confidence", 0, "drop fragments below this recognition confidence")
	rootCmd.PersistentFlags().String("lang", "eng", "recognition language (ocr command)")
	rootCmd.PersistentFlags().Bool("threshold", false, "replace cells below the threshold value")
	rootCmd.PersistentFlags().String("threshold-value", "5n", "threshold as an engineering value")
	rootCmd.PersistentFlags().String("threshold-replace-with", "-", `replacement for cells below threshold ("-" or "0")`)
	rootCmd.PersistentFlags().Bool("convert", true, "rescale numeric cells to the target prefix")
	rootCmd.PersistentFlags().String("target-prefix", "u", "target engineering prefix (f p n u m k M G, or empty for none)")
	rootCmd.PersistentFlags().Bool("split", true, "emit value and unit as separate columns")
	rootCmd.PersistentFlags().String("notation", "none", "notation style: none, scientific, or engineering")
	rootCmd.PersistentFlags().Int("precision", 6, "significant digits for notation conversion (1-15)")
	rootCmd.PersistentFlags().String("copy", "all", "copy strategy: all, value_only, or unit_only")

	config.BindFlags(viper.GetViper(), rootCmd.PersistentFlags())
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".snapgrid")
	}

	// Missing config files are fine; everything has a default.
	_ = viper.ReadInConfig()
}

// loadConfig materializes the validated configuration and a logger for one
// command invocation.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
