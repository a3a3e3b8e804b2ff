// Package pipeline post-processes reconstructed table grids. Every cell is
// parsed as an engineering-unit value and run through a fixed sequence of
// transforms: threshold filtering, unit conversion, value/unit splitting,
// notation conversion, and copy-strategy projection. Stages toggle on and
// off through Settings, but their relative order never changes.
//
// The pipeline never fails on cell content. Cells that do not parse, and
// conversions that fall outside the supported magnitude range, keep their
// original string and surface as per-cell warnings in the Result.
package pipeline
