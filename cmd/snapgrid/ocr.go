package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snapgrid/snapgrid/ocr"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr [image]",
	Short: "Recognize an image and reconstruct its content",
	Long: `ocr runs text recognition on a screen capture (PNG, JPEG, GIF, BMP,
TIFF or WebP) and prints the reconstruction of what it finds.

Requires a binary built with -tags ocr and a Tesseract installation;
without them the command reports that recognition is unavailable.`,
	Args: cobra.ExactArgs(1),
	RunE: runOCR,
}

func init() {
	ocrCmd.Flags().Bool("sparse", false, "use sparse page segmentation (scattered labels, schematics)")
	rootCmd.AddCommand(ocrCmd)
}

func runOCR(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	client, err := ocr.New()
	if err != nil {
		if errors.Is(err, ocr.ErrNotEnabled) {
			return fmt.Errorf("recognition unavailable: rebuild with -tags ocr")
		}
		return err
	}
	defer client.Close()

	if cfg.Language != "" {
		if err := client.SetLanguage(cfg.Language); err != nil {
			return err
		}
	}
	if sparse, _ := cmd.Flags().GetBool("sparse"); sparse {
		if err := client.SetPageSegMode(ocr.PSMSparseText); err != nil {
			return err
		}
	}

	fragments, err := client.Fragments(data)
	if err != nil {
		return err
	}
	log.Infow("image recognized", "file", args[0], "fragments", len(fragments))

	return renderFragments(cmd, cfg, log, fragments)
}
