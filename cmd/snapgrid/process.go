package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snapgrid/snapgrid"
	"github.com/snapgrid/snapgrid/hocr"
	"github.com/snapgrid/snapgrid/internal/config"
	"github.com/snapgrid/snapgrid/internal/logger"
	"github.com/snapgrid/snapgrid/model"
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Reconstruct and post-process recognized fragments",
	Long: `process reads positioned text fragments from an hOCR document or a
fragment JSON file and prints the reconstruction: a processed TSV grid
in table mode, plain text with restored spacing in text mode.

Reads stdin when no file is given. Files ending in .json are decoded as
fragment JSON; everything else is parsed as hOCR. Use --json to force
JSON decoding for stdin or unconventional file names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().Bool("json", false, "input is fragment JSON rather than hOCR")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	data, name, err := readInput(args)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		asJSON = true
	}

	var fragments []model.Fragment
	if asJSON {
		fragments, err = decodeFragments(data)
	} else {
		fragments, err = hocr.ParseBytes(data)
	}
	if err != nil {
		return err
	}
	log.Debugw("input decoded", "fragments", len(fragments), "json", asJSON)

	return renderFragments(cmd, cfg, log, fragments)
}

// renderFragments runs the reconstruction chain and prints the result, with
// per-cell warnings going to the log rather than polluting stdout.
func renderFragments(cmd *cobra.Command, cfg *config.Config, log *logger.Logger, fragments []model.Fragment) error {
	out, warnings, err := buildChain(cfg, fragments).Render()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warnw("cell kept as-is", "row", w.Row, "col", w.Col, "reason", w.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func buildChain(cfg *config.Config, fragments []model.Fragment) *snapgrid.Reconstructor {
	// cfg.Mode was validated in config.Load.
	mode := snapgrid.Must(snapgrid.ParseMode(cfg.Mode))
	return snapgrid.From(fragments).
		Mode(mode).
		MinConfidence(cfg.MinConfidence).
		Settings(cfg.Settings)
}
