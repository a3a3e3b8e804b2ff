// Package units parses, converts, and formats engineering-unit cell values.
//
// A cell string such as "5.1k", "10nF", or "1.23e-4V" parses into a typed
// [Value] — a closed variant over prefixed, scientific, bare, sentinel ("-"),
// and unparsed shapes. Transforms ([Convert], [ApplyThreshold],
// [ToScientific], [ToEngineering], [SciToPrefix]) are pure functions over
// values and use exact decimal arithmetic throughout, so converting between
// prefixes never accumulates binary floating-point drift.
package units
