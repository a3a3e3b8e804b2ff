package units

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedMagnitude is returned when a value's magnitude falls outside
// the supported engineering prefix range [10^-15, 10^9].
var ErrUnsupportedMagnitude = errors.New("magnitude outside supported prefix range")

// ErrInvalidPrecision is returned when a precision outside [1, 15] is
// requested.
var ErrInvalidPrecision = errors.New("precision must be between 1 and 15")

// ToScientific renders a numeric value in normalized scientific notation:
// mantissa in [1, 10), precision digits after the decimal point, and a
// signed two-digit exponent (d.ddE±dd). The unit suffix is appended
// unchanged. Non-numeric values reproduce their original string.
func ToScientific(v Value, precision int) (string, error) {
	if precision < 1 || precision > 15 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	base, ok := v.Base()
	if !ok {
		return v.Raw, nil
	}

	if base.IsZero() {
		zero := decimal.Zero.StringFixed(int32(precision))
		return fmt.Sprintf("%sE+00%s", zero, v.Unit), nil
	}

	exp := exponent10(base)
	mantissa := base.Shift(int32(-exp)).Round(int32(precision))
	// Rounding can push the mantissa to 10; renormalize.
	if mantissa.Abs().Cmp(decimal.NewFromInt(10)) >= 0 {
		exp++
		mantissa = base.Shift(int32(-exp)).Round(int32(precision))
	}

	return fmt.Sprintf("%sE%+03d%s", mantissa.StringFixed(int32(precision)), exp, v.Unit), nil
}

// ToEngineering renders a numeric value in engineering notation: the
// exponent is constrained to a multiple of three and the mantissa to
// [1, 1000). Precision counts total significant digits, so the decimal
// places shrink as the integer part grows. Zero renders as "0" plus the
// unit suffix. Non-numeric values reproduce their original string.
func ToEngineering(v Value, precision int) (string, error) {
	if precision < 1 || precision > 15 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	base, ok := v.Base()
	if !ok {
		return v.Raw, nil
	}

	if base.IsZero() {
		return "0" + v.Unit, nil
	}

	engExp := floorDiv(exponent10(base), 3) * 3
	mantissa := base.Shift(int32(-engExp))

	decimals := precision - (exponent10(mantissa) + 1)
	if decimals < 0 {
		decimals = 0
	}
	rounded := mantissa.Round(int32(decimals))
	// Rounding can push the mantissa to 1000; renormalize.
	if rounded.Abs().Cmp(decimal.NewFromInt(1000)) >= 0 {
		engExp += 3
		mantissa = rounded.Shift(-3)
		decimals = precision - (exponent10(mantissa) + 1)
		if decimals < 0 {
			decimals = 0
		}
		rounded = mantissa.Round(int32(decimals))
	}

	return fmt.Sprintf("%sE%+03d%s", rounded.StringFixed(int32(decimals)), engExp, v.Unit), nil
}

// SciToPrefix rewrites a numeric value onto the nearest engineering prefix
// at or below its magnitude, recomputing the mantissa exactly. Magnitudes
// outside [10^-15, 10^9] fail with ErrUnsupportedMagnitude and the value is
// returned unchanged. Non-numeric values pass through untouched.
func SciToPrefix(v Value) (Value, error) {
	base, ok := v.Base()
	if !ok {
		return v, nil
	}

	if base.IsZero() {
		return Value{
			Kind:     Prefixed,
			Mantissa: decimal.Zero,
			Prefix:   None,
			Unit:     v.Unit,
			Raw:      v.Raw,
		}, nil
	}

	exp := exponent10(base)
	if exp < MinExponent || exp > MaxExponent {
		return v, fmt.Errorf("%w: 10^%d", ErrUnsupportedMagnitude, exp)
	}

	prefix, _ := PrefixForExponent(floorDiv(exp, 3) * 3)
	return Convert(v, prefix), nil
}

// exponent10 returns the base-ten exponent of d (floor of log10 |d|),
// computed exactly from the decimal representation. d must be non-zero.
func exponent10(d decimal.Decimal) int {
	coeff := new(big.Int).Abs(d.Coefficient())
	digits := len(coeff.String())
	return int(d.Exponent()) + digits - 1
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
