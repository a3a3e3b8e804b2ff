package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the shape of a parsed cell value. Every downstream
// transform switches exhaustively over this set.
type Kind int

const (
	// Unparsed marks a cell with no extractable leading numeric component.
	// The original string passes through the pipeline unmodified.
	Unparsed Kind = iota

	// Sentinel marks the literal "-" placeholder: valid, but non-numeric.
	Sentinel

	// Bare is a plain number with an optional unit suffix ("123", "4.5V").
	Bare

	// Prefixed is a number with an engineering prefix ("5.1k", "10nF").
	Prefixed

	// Scientific is a number in e-notation ("1.23e-4", "2E+06V").
	Scientific
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Sentinel:
		return "sentinel"
	case Bare:
		return "bare"
	case Prefixed:
		return "prefixed"
	case Scientific:
		return "scientific"
	default:
		return "unparsed"
	}
}

// Value is a parsed cell value. Exactly one magnitude representation is
// populated for a numeric value: Prefix for Prefixed, Exponent for
// Scientific; Bare uses neither. Unit holds any trailing non-numeric suffix
// so it survives round-tripping. Raw always holds the original cell string.
type Value struct {
	Kind     Kind
	Mantissa decimal.Decimal
	Prefix   Prefix
	Exponent int
	Unit     string
	Raw      string
}

// IsNumeric reports whether the value carries a usable magnitude.
func (v Value) IsNumeric() bool {
	switch v.Kind {
	case Bare, Prefixed, Scientific:
		return true
	default:
		return false
	}
}

// Base returns the value scaled to base magnitude (power of ten zero).
// The second return value is false for sentinel and unparsed values.
func (v Value) Base() (decimal.Decimal, bool) {
	switch v.Kind {
	case Bare:
		return v.Mantissa, true
	case Prefixed:
		exp, ok := v.Prefix.Exponent()
		if !ok {
			return decimal.Decimal{}, false
		}
		return v.Mantissa.Shift(int32(exp)), true
	case Scientific:
		return v.Mantissa.Shift(int32(v.Exponent)), true
	default:
		return decimal.Decimal{}, false
	}
}

// Format renders the value back into a cell string. Sentinel and unparsed
// values reproduce the original string exactly.
func (v Value) Format() string {
	switch v.Kind {
	case Bare:
		return v.Mantissa.String() + v.Unit
	case Prefixed:
		return v.Mantissa.String() + string(v.Prefix) + v.Unit
	case Scientific:
		return fmt.Sprintf("%se%d%s", v.Mantissa.String(), v.Exponent, v.Unit)
	default:
		return v.Raw
	}
}

// NumericString renders the magnitude portion: mantissa plus prefix or
// exponent, with the unit suffix stripped. Non-numeric values reproduce the
// original string. For any numeric value, NumericString + UnitString equals
// Format.
func (v Value) NumericString() string {
	switch v.Kind {
	case Bare:
		return v.Mantissa.String()
	case Prefixed:
		return v.Mantissa.String() + string(v.Prefix)
	case Scientific:
		return fmt.Sprintf("%se%d", v.Mantissa.String(), v.Exponent)
	default:
		return v.Raw
	}
}

// UnitString renders only the unit suffix. The engineering prefix belongs to
// the magnitude, not the unit. Non-numeric values yield the empty string.
func (v Value) UnitString() string {
	if !v.IsNumeric() {
		return ""
	}
	return v.Unit
}
