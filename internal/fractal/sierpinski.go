package fractal

import "fmt"

// ChaosGame plays the random-vertex midpoint game over the triangle a, b,
// c: each step picks one of the three vertices uniformly, moves the current
// point halfway toward it, and records where it lands. The walk starts at a
// unless WithStart says otherwise, and the result holds exactly n points;
// n == 0 is a valid empty run.
func ChaosGame(a, b, c Point, n int, opts ...Option) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrCount, n)
	}
	cfg := newGenConfig(a, opts)
	verts := [3]Point{a, b, c}
	p := cfg.start
	for i := 0; i < cfg.warmup; i++ {
		p = p.Mid(verts[cfg.rng.Intn(3)])
	}
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p = p.Mid(verts[cfg.rng.Intn(3)])
		out = append(out, p)
	}
	return out, nil
}
