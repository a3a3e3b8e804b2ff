package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBox is returned when a bounding box cannot be normalized: fewer
// than two distinct coordinate points, or a non-finite coordinate.
var ErrInvalidBox = errors.New("invalid bounding box")

// Fragment is one recognized text span: a normalized bounding box, the
// recognized string, and the recognizer's confidence in [0,1].
//
// Fragments are immutable once created and are the sole input to layout
// reconstruction. Confidence is carried through untouched; filtering policy
// belongs to the caller.
type Fragment struct {
	BBox       BBox
	Text       string
	Confidence float64
}

// NewFragmentFromPolygon builds a fragment from a corner list (ordered or
// unordered). The box is the axis-aligned bounding rectangle of the points.
func NewFragmentFromPolygon(points []Point, text string, confidence float64) (Fragment, error) {
	if len(points) < 2 {
		return Fragment{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidBox, len(points))
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return Fragment{}, fmt.Errorf("%w: non-finite coordinate (%v, %v)", ErrInvalidBox, p.X, p.Y)
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	if minX == maxX && minY == maxY {
		return Fragment{}, fmt.Errorf("%w: all points coincide", ErrInvalidBox)
	}

	return Fragment{
		BBox:       NewBBox(minX, minY, maxX-minX, maxY-minY),
		Text:       text,
		Confidence: confidence,
	}, nil
}

// NewFragmentFromCorners builds a fragment from min/max corner coordinates.
func NewFragmentFromCorners(x1, y1, x2, y2 float64, text string, confidence float64) (Fragment, error) {
	return NewFragmentFromPolygon([]Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, text, confidence)
}

// NewFragmentFromRect builds a fragment from an origin plus extents.
// Width and height must be non-negative.
func NewFragmentFromRect(x, y, width, height float64, text string, confidence float64) (Fragment, error) {
	if width < 0 || height < 0 {
		return Fragment{}, fmt.Errorf("%w: negative extent %vx%v", ErrInvalidBox, width, height)
	}
	return NewFragmentFromCorners(x, y, x+width, y+height, text, confidence)
}

// AverageCharWidth estimates the width of one character of this fragment.
// Returns 0 for empty text.
func (f Fragment) AverageCharWidth() float64 {
	n := len([]rune(f.Text))
	if n == 0 {
		return 0
	}
	return f.BBox.Width / float64(n)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
