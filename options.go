package snapgrid

import (
	"fmt"

	"github.com/snapgrid/snapgrid/layout"
	"github.com/snapgrid/snapgrid/pipeline"
)

// Mode selects how a fragment set is reconstructed.
type Mode int

const (
	// ModeAuto classifies the fragment set with the layout heuristic.
	ModeAuto Mode = iota

	// ModeTable forces grid reconstruction.
	ModeTable

	// ModeText forces plain-text reconstruction.
	ModeText
)

// String returns "auto", "table", or "text".
func (m Mode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModeText:
		return "text"
	default:
		return "auto"
	}
}

// ParseMode converts a mode name into a Mode. Recognized names are "auto",
// "table", and "text".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto":
		return ModeAuto, nil
	case "table":
		return ModeTable, nil
	case "text":
		return ModeText, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode %q", s)
	}
}

// reconstructOptions holds the configuration accumulated along a fluent chain.
// It contains no reference types, so copying the struct is a deep copy.
type reconstructOptions struct {
	mode          Mode
	minConfidence float64
	detector      layout.DetectorConfig
	table         layout.TableConfig
	text          layout.TextConfig
	settings      pipeline.Settings
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() reconstructOptions {
	return reconstructOptions{
		mode:          ModeAuto,
		minConfidence: 0, // keep everything; confidence policy belongs to the caller
		detector:      layout.DefaultDetectorConfig(),
		table:         layout.DefaultTableConfig(),
		text:          layout.DefaultTextConfig(),
		settings:      pipeline.DefaultSettings(),
	}
}
