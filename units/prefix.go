package units

// Prefix is an engineering unit prefix denoting a power-of-ten multiplier.
// The micro prefix is always the ASCII letter "u"; "μ" is neither produced
// nor accepted.
type Prefix string

// Supported prefixes, in magnitude order.
const (
	Femto Prefix = "f" // 10^-15
	Pico  Prefix = "p" // 10^-12
	Nano  Prefix = "n" // 10^-9
	Micro Prefix = "u" // 10^-6
	Milli Prefix = "m" // 10^-3
	None  Prefix = ""  // 10^0
	Kilo  Prefix = "k" // 10^3
	Mega  Prefix = "M" // 10^6
	Giga  Prefix = "G" // 10^9
)

// MinExponent and MaxExponent bound the supported magnitude range.
const (
	MinExponent = -15
	MaxExponent = 9
)

var prefixExponents = map[Prefix]int{
	Femto: -15,
	Pico:  -12,
	Nano:  -9,
	Micro: -6,
	Milli: -3,
	None:  0,
	Kilo:  3,
	Mega:  6,
	Giga:  9,
}

var exponentPrefixes = map[int]Prefix{
	-15: Femto,
	-12: Pico,
	-9:  Nano,
	-6:  Micro,
	-3:  Milli,
	0:   None,
	3:   Kilo,
	6:   Mega,
	9:   Giga,
}

// Exponent returns the power of ten the prefix denotes.
// The second return value is false for unrecognized prefixes.
func (p Prefix) Exponent() (int, bool) {
	exp, ok := prefixExponents[p]
	return exp, ok
}

// IsValid reports whether p is one of the supported prefixes.
func (p Prefix) IsValid() bool {
	_, ok := prefixExponents[p]
	return ok
}

// PrefixForExponent returns the prefix for an exact multiple-of-three
// exponent in [-15, 9]. The second return value is false otherwise.
func PrefixForExponent(exp int) (Prefix, bool) {
	p, ok := exponentPrefixes[exp]
	return p, ok
}
