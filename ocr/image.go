package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotEnabled is returned when recognition is requested but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrInvalidImage is returned for input that is not a decodable image.
var ErrInvalidImage = errors.New("invalid image")

// PageSegMode mirrors Tesseract's page segmentation modes. The values are
// Tesseract's own, so they are stable across builds with and without OCR
// support.
type PageSegMode int

const (
	PSMAuto         PageSegMode = 3
	PSMSingleColumn PageSegMode = 4
	PSMSingleBlock  PageSegMode = 6
	PSMSingleLine   PageSegMode = 7
	PSMSparseText   PageSegMode = 11
)

// ValidateImage decodes the image header and returns the pixel dimensions.
// PNG, JPEG, GIF, BMP, TIFF, and WebP are recognized. Screen captures are
// validated up front so a bad grab fails here instead of deep inside the
// recognition engine.
func ValidateImage(data []byte) (width, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("%w: empty %s image", ErrInvalidImage, format)
	}
	return cfg.Width, cfg.Height, nil
}
