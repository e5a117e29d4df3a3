package fractal

import (
	"fmt"
	"math"
)

// sin60 is √3/2, the off-diagonal entry of the 60° rotation.
var sin60 = math.Sqrt(3) / 2

// rot60 rotates v counterclockwise by 60 degrees. Applied to the middle
// third of a left-to-right segment this puts the bump apex above the
// baseline.
func rot60(v Point) Point {
	return Point{
		X: 0.5*v.X - sin60*v.Y,
		Y: sin60*v.X + 0.5*v.Y,
	}
}

// Koch returns the Koch curve built over seg at the given recursion depth.
// Depth 0 is the input segment itself; every further level replaces each
// segment with four, so the result holds 4^depth segments chained left to
// right with exactly shared endpoints.
func Koch(seg Segment, depth int) ([]Segment, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDepth, depth)
	}
	return subdivide(nil, seg, depth), nil
}

// KochLevels precomputes the curve at every depth from 0 through maxDepth,
// the shape the level-stepping animation consumes.
func KochLevels(seg Segment, maxDepth int) ([][]Segment, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDepth, maxDepth)
	}
	levels := make([][]Segment, maxDepth+1)
	for d := 0; d <= maxDepth; d++ {
		levels[d] = subdivide(nil, seg, d)
	}
	return levels, nil
}

// subdivide appends the depth-level expansion of seg to out. The division
// points P1, P2 and the apex are computed once per segment, so adjacent
// children share their endpoint values bit for bit.
func subdivide(out []Segment, seg Segment, depth int) []Segment {
	if depth == 0 {
		return append(out, seg)
	}
	third := seg.B.Sub(seg.A).Mul(1.0 / 3.0)
	p1 := seg.A.Add(third)
	p2 := p1.Add(third)
	apex := p1.Add(rot60(third))
	out = subdivide(out, Segment{A: seg.A, B: p1}, depth-1)
	out = subdivide(out, Segment{A: p1, B: apex}, depth-1)
	out = subdivide(out, Segment{A: apex, B: p2}, depth-1)
	out = subdivide(out, Segment{A: p2, B: seg.B}, depth-1)
	return out
}

// Polyline flattens a segment chain into its point path, collapsing shared
// endpoints: a continuous chain of n segments yields n+1 points. A break in
// the chain keeps both endpoints so no segment is lost.
func Polyline(segs []Segment) []Point {
	if len(segs) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(segs)+1)
	pts = append(pts, segs[0].A)
	for _, s := range segs {
		if pts[len(pts)-1] != s.A {
			pts = append(pts, s.A)
		}
		pts = append(pts, s.B)
	}
	return pts
}
