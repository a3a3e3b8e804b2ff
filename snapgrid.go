// Package snapgrid provides a fluent API for reconstructing tables and text
// from spatially positioned fragments produced by a recognition engine, and
// for post-processing engineering-unit values found in table cells.
//
// Basic usage:
//
//	tsv, warnings, err := snapgrid.From(fragments).Render()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", snapgrid.FormatWarnings(warnings))
//	}
//
// With options:
//
//	grid, _, err := snapgrid.From(fragments).
//	    Mode(snapgrid.ModeTable).
//	    MinConfidence(0.6).
//	    Settings(settings).
//	    Process()
//
// For advanced use cases, the lower-level layout, units, and pipeline
// packages are also available.
package snapgrid

import (
	"io"

	"github.com/snapgrid/snapgrid/hocr"
	"github.com/snapgrid/snapgrid/model"
	"github.com/snapgrid/snapgrid/ocr"
)

// From creates a Reconstructor over recognized fragments for fluent
// configuration.
//
// Example:
//
//	text, warnings, err := snapgrid.From(fragments).Text()
func From(fragments []model.Fragment) *Reconstructor {
	return &Reconstructor{
		fragments: fragments,
		options:   defaultOptions(),
	}
}

// FromHOCR creates a Reconstructor from an hOCR document.
//
// Example:
//
//	tsv, warnings, err := snapgrid.FromHOCR(file).TSV()
func FromHOCR(r io.Reader) *Reconstructor {
	fragments, err := hocr.Parse(r)
	return &Reconstructor{
		fragments: fragments,
		options:   defaultOptions(),
		err:       err,
	}
}

// FromImage creates a Reconstructor by running the recognition engine over
// image data. It requires a build with the "ocr" tag; otherwise the chain
// fails with ocr.ErrNotEnabled at its terminal operation.
func FromImage(imageData []byte) *Reconstructor {
	rec := &Reconstructor{options: defaultOptions()}

	client, err := ocr.New()
	if err != nil {
		rec.err = err
		return rec
	}
	defer client.Close()

	rec.fragments, rec.err = client.Fragments(imageData)
	return rec
}

// Must wraps a call to a function returning (T, error) and panics if the
// error is non-nil. It is intended for scripts and tests where error
// handling would be cumbersome.
//
// Example:
//
//	mode := snapgrid.Must(snapgrid.From(fragments).Detect())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRender wraps a terminal operation returning (T, []Warning, error) and
// panics if the error is non-nil, discarding warnings.
//
// Example:
//
//	tsv := snapgrid.MustRender(snapgrid.From(fragments).TSV())
func MustRender[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
