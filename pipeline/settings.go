package pipeline

import (
	"errors"
	"fmt"

	"github.com/snapgrid/snapgrid/units"
)

// ErrInvalidSetting is returned by Settings.Validate for values outside
// their declared domain.
var ErrInvalidSetting = errors.New("invalid setting")

// NotationStyle selects the output notation for numeric cells.
type NotationStyle string

const (
	NotationNone        NotationStyle = "none"
	NotationScientific  NotationStyle = "scientific"
	NotationEngineering NotationStyle = "engineering"
)

// CopyStrategy selects which portion of a numeric cell reaches the output.
type CopyStrategy string

const (
	CopyAll       CopyStrategy = "all"
	CopyValueOnly CopyStrategy = "value_only"
	CopyUnitOnly  CopyStrategy = "unit_only"
)

// Settings is an immutable configuration snapshot for one pipeline run.
// The zero value is not useful; start from DefaultSettings and override.
type Settings struct {
	// ApplyThreshold enables replacement of cells strictly below
	// ThresholdValue with ThresholdReplaceWith.
	ApplyThreshold       bool
	ThresholdValue       string
	ThresholdReplaceWith string

	// ApplyUnitConversion enables rescaling every numeric cell to
	// TargetUnitPrefix.
	ApplyUnitConversion bool
	TargetUnitPrefix    units.Prefix

	// SplitValueUnit emits the magnitude and the unit suffix as two
	// adjacent cells instead of one.
	SplitValueUnit bool

	// NotationStyle and Precision control numeric formatting. Precision is
	// significant digits, between 1 and 15.
	NotationStyle NotationStyle
	Precision     int

	// CopyStrategy projects the final cell: everything, magnitude only,
	// or unit suffix only.
	CopyStrategy CopyStrategy
}

// DefaultSettings returns the documented defaults. Callers materializing
// settings from an external source should start here so that missing fields
// mean "default" rather than the zero value.
func DefaultSettings() Settings {
	return Settings{
		ApplyThreshold:       false,
		ThresholdValue:       "5n",
		ThresholdReplaceWith: "-",
		ApplyUnitConversion:  true,
		TargetUnitPrefix:     units.Micro,
		SplitValueUnit:       true,
		NotationStyle:        NotationNone,
		Precision:            6,
		CopyStrategy:         CopyAll,
	}
}

// Validate checks every field against its declared domain. A validation
// failure is structural: the pipeline refuses to run rather than degrading.
func (s Settings) Validate() error {
	if s.Precision < 1 || s.Precision > 15 {
		return fmt.Errorf("%w: precision %d outside [1,15]", ErrInvalidSetting, s.Precision)
	}
	switch s.NotationStyle {
	case NotationNone, NotationScientific, NotationEngineering:
	default:
		return fmt.Errorf("%w: unknown notation style %q", ErrInvalidSetting, s.NotationStyle)
	}
	switch s.CopyStrategy {
	case CopyAll, CopyValueOnly, CopyUnitOnly:
	default:
		return fmt.Errorf("%w: unknown copy strategy %q", ErrInvalidSetting, s.CopyStrategy)
	}
	if s.ApplyThreshold {
		if s.ThresholdReplaceWith != "-" && s.ThresholdReplaceWith != "0" {
			return fmt.Errorf("%w: threshold replacement %q, want \"-\" or \"0\"", ErrInvalidSetting, s.ThresholdReplaceWith)
		}
	}
	if s.ApplyUnitConversion && !s.TargetUnitPrefix.IsValid() {
		return fmt.Errorf("%w: unknown target unit prefix %q", ErrInvalidSetting, s.TargetUnitPrefix)
	}
	return nil
}
