// Package layout reconstructs structure from spatially positioned text
// fragments. It classifies a fragment set as tabular or free-running text,
// clusters fragment centers into rows and columns, and rebuilds either a
// rectangular grid or a whitespace-preserving text block.
//
// The entry points are DetectMode, TableReconstructor, and TextReconstructor.
// All of them are deterministic: the same fragments and the same configuration
// always produce the same output.
package layout
