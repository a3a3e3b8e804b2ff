package units

// Convert rescales a numeric value to the target engineering prefix. The
// mantissa is multiplied by 10^(source exponent − target exponent) using
// exact decimal arithmetic, so repeated round-trips reproduce the original
// mantissa. The unit suffix is preserved unchanged.
//
// Sentinel and unparsed values, and unrecognized target prefixes, pass
// through untouched.
func Convert(v Value, target Prefix) Value {
	targetExp, ok := target.Exponent()
	if !ok || !v.IsNumeric() {
		return v
	}

	base, ok := v.Base()
	if !ok {
		return v
	}

	return Value{
		Kind:     Prefixed,
		Mantissa: base.Shift(int32(-targetExp)),
		Prefix:   target,
		Unit:     v.Unit,
		Raw:      v.Raw,
	}
}
