package fractal

import (
	"fmt"
	"math"
)

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point { return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2} }

// Segment is an ordered pair of points.
type Segment struct {
	A, B Point
}

// AffineMap is one transform of an iterated function system: a 2x2 linear
// part, a translation, and the probability of being selected per step.
type AffineMap struct {
	Matrix [2][2]float64
	Offset Point
	Prob   float64
}

// Apply returns Matrix·p + Offset.
func (a AffineMap) Apply(p Point) Point {
	return Point{
		X: a.Matrix[0][0]*p.X + a.Matrix[0][1]*p.Y + a.Offset.X,
		Y: a.Matrix[1][0]*p.X + a.Matrix[1][1]*p.Y + a.Offset.Y,
	}
}

// ProbEpsilon is the tolerance used when checking that the probabilities of
// a map set sum to 1.
const ProbEpsilon = 1e-9

// ValidateMaps checks an IFS map set: it must be non-empty, every
// probability non-negative, and the probabilities must sum to 1 within
// ProbEpsilon. Zero-probability entries are legal.
func ValidateMaps(maps []AffineMap) error {
	if len(maps) == 0 {
		return fmt.Errorf("%w: empty map set", ErrProbability)
	}
	sum := 0.0
	for i, m := range maps {
		if m.Prob < 0 {
			return fmt.Errorf("%w: map %d has negative probability %g", ErrProbability, i, m.Prob)
		}
		sum += m.Prob
	}
	if math.Abs(sum-1) > ProbEpsilon {
		return fmt.Errorf("%w: probabilities sum to %g", ErrProbability, sum)
	}
	return nil
}

// BBox is an axis-aligned bounding box in world coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has positive extent on both axes.
func (b BBox) Valid() bool { return b.MaxX > b.MinX && b.MaxY > b.MinY }

// Pad returns the box grown by d on every side.
func (b BBox) Pad(d float64) BBox {
	return BBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// BoundsOf returns the bounding box of pts, or the zero box when pts is empty.
func BoundsOf(pts []Point) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	b := BBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}
