// Package model provides the shared data types for layout reconstruction.
//
// This package defines the structures that flow between the recognizer
// boundary and the reconstruction pipeline. All reconstruction and
// post-processing operations consume and produce these types, making them the
// primary API for callers.
//
// # Fragments
//
// A [Fragment] is one recognized text span: normalized bounding box, text, and
// recognizer confidence. Fragments are created through normalizing
// constructors that accept the box encodings recognizers actually emit:
//
//   - [NewFragmentFromPolygon] - 4-point (or n-point) corner lists
//   - [NewFragmentFromCorners] - min/max corner rectangles
//   - [NewFragmentFromRect] - origin plus width/height
//
// Geometrically invalid input fails with [ErrInvalidBox].
//
// # Grids
//
// A [Grid] is a rectangular table of cell strings with empty-string fill.
// [Grid.TSV] serializes it as tab-separated columns and newline-separated
// rows for spreadsheet paste.
//
// # Geometry
//
// [BBox] and [Point] are screen-space primitives (origin top-left, Y grows
// downward) with the usual edge, center, union, and intersection helpers.
package model
