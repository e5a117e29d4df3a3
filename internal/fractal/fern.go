package fractal

import (
	"fmt"
	"math/rand"
)

// BarnsleyMaps returns the classic four-transform system for the Barnsley
// fern: the stem (1%), the main successively smaller leaflet copy (85%),
// and the two alternating side leaflets (7% each).
func BarnsleyMaps() []AffineMap {
	return []AffineMap{
		{Matrix: [2][2]float64{{0, 0}, {0, 0.16}}, Offset: Point{}, Prob: 0.01},
		{Matrix: [2][2]float64{{0.85, 0.04}, {-0.04, 0.85}}, Offset: Point{Y: 1.6}, Prob: 0.85},
		{Matrix: [2][2]float64{{0.2, -0.26}, {0.23, 0.22}}, Offset: Point{Y: 1.6}, Prob: 0.07},
		{Matrix: [2][2]float64{{-0.15, 0.28}, {0.26, 0.24}}, Offset: Point{Y: 0.44}, Prob: 0.07},
	}
}

// IFS iterates a point through the given function system: each step samples
// one map by its probability and moves the current point through it,
// recording where it lands. The walk starts at the origin unless WithStart
// says otherwise. The map set is validated before any generation happens,
// and the result holds exactly n points; n == 0 is a valid empty run.
func IFS(maps []AffineMap, n int, opts ...Option) ([]Point, error) {
	if err := ValidateMaps(maps); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrCount, n)
	}
	cfg := newGenConfig(Point{}, opts)
	p := cfg.start
	for i := 0; i < cfg.warmup; i++ {
		p = chooseMap(maps, cfg.rng).Apply(p)
	}
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p = chooseMap(maps, cfg.rng).Apply(p)
		out = append(out, p)
	}
	return out, nil
}

// chooseMap samples one entry by cumulative probability. The comparison is
// strict so zero-probability entries can never match; if floating drift
// leaves the draw above the final cumulative sum, the last entry with
// positive probability wins.
func chooseMap(maps []AffineMap, rng *rand.Rand) AffineMap {
	r := rng.Float64()
	cum := 0.0
	last := 0
	for i, m := range maps {
		cum += m.Prob
		if r < cum {
			return m
		}
		if m.Prob > 0 {
			last = i
		}
	}
	return maps[last]
}
