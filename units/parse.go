package units

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// cellPattern matches the cell shapes the parser recognizes: a signed
// number, an optional e-notation exponent, an optional engineering prefix
// letter, and an optional non-numeric unit suffix. The number group is
// deliberately loose ("1.2.3" matches here and is rejected by the decimal
// parser) to mirror how recognizers mangle decimal points.
var cellPattern = regexp.MustCompile(
	`^(-?[\d.]+)` + // numeric component
		`(?:[eE]([+-]?\d+))?` + // optional exponent
		`([fpnumkMG])?` + // optional engineering prefix
		`([^\d\s]*)$`) // optional unit suffix

// Parse converts a raw cell string into a typed Value. It never fails:
// strings with no extractable numeric component come back with Kind
// Unparsed and the original text preserved in Raw.
//
// The literal "-" is the placeholder convention for absent readings and
// parses to the Sentinel kind rather than an Unparsed failure.
func Parse(cell string) Value {
	trimmed := strings.TrimSpace(cell)

	if trimmed == "-" {
		return Value{Kind: Sentinel, Raw: trimmed}
	}

	m := cellPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Value{Kind: Unparsed, Raw: trimmed}
	}

	numPart, expPart, prefixPart, unitPart := m[1], m[2], m[3], m[4]

	mantissa, err := decimal.NewFromString(numPart)
	if err != nil {
		return Value{Kind: Unparsed, Raw: trimmed}
	}

	// An explicit exponent folds into the mantissa. A prefix letter after
	// the exponent still acts as a prefix, so "1.2e-3k" has base value 1.2.
	if expPart != "" {
		exp, err := strconv.Atoi(expPart)
		if err != nil {
			return Value{Kind: Unparsed, Raw: trimmed}
		}
		if prefixPart != "" {
			return Value{
				Kind:     Prefixed,
				Mantissa: mantissa.Shift(int32(exp)),
				Prefix:   Prefix(prefixPart),
				Unit:     unitPart,
				Raw:      trimmed,
			}
		}
		return Value{
			Kind:     Scientific,
			Mantissa: mantissa,
			Exponent: exp,
			Unit:     unitPart,
			Raw:      trimmed,
		}
	}

	if prefixPart != "" {
		return Value{
			Kind:     Prefixed,
			Mantissa: mantissa,
			Prefix:   Prefix(prefixPart),
			Unit:     unitPart,
			Raw:      trimmed,
		}
	}

	return Value{
		Kind:     Bare,
		Mantissa: mantissa,
		Unit:     unitPart,
		Raw:      trimmed,
	}
}
