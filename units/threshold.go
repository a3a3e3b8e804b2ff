package units

// ApplyThreshold replaces v with the replacement value when v is strictly
// below the threshold. Both sides are compared at base magnitude. The
// comparison is signed — no absolute value is taken — so negative readings
// below a positive threshold are replaced.
//
// Sentinel and unparsed cells are never considered below threshold, and an
// unparseable threshold disables the filter entirely.
func ApplyThreshold(v, threshold, replacement Value) Value {
	valBase, ok := v.Base()
	if !ok {
		return v
	}
	thrBase, ok := threshold.Base()
	if !ok {
		return v
	}

	if valBase.Cmp(thrBase) < 0 {
		return replacement
	}
	return v
}
