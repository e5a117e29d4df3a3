package anim

import (
	"fmt"
	"time"

	"fracplot/internal/fractal"
)

// MaxKochDepth caps recursive subdivision. Depth 10 already yields just over
// a million segments, far beyond what any display resolves.
const MaxKochDepth = 10

// Plot colors per stage.
const (
	fernHex       = "#5DBB63"
	kochHex       = "#4A90E2"
	sierpinskiHex = "#E05252"
)

// Config collects the run's tunable constants. Frames and Interval of zero
// mean "use the per-stage default"; Seed zero seeds from the wall clock.
type Config struct {
	FernPoints       int
	SierpinskiPoints int
	KochDepth        int
	Warmup           int

	Frames   int
	Interval time.Duration
	Seed     int64

	// KochByLevel switches the Koch stage from prefix reveal to one
	// whole subdivision level per frame.
	KochByLevel bool
}

// DefaultConfig returns the classic demo parameters.
func DefaultConfig() Config {
	return Config{
		FernPoints:       200000,
		SierpinskiPoints: 30000,
		KochDepth:        5,
	}
}

func (c Config) validate() error {
	if c.FernPoints <= 0 {
		return fmt.Errorf("%w: fern points must be positive, got %d", ErrConfig, c.FernPoints)
	}
	if c.SierpinskiPoints <= 0 {
		return fmt.Errorf("%w: sierpinski points must be positive, got %d", ErrConfig, c.SierpinskiPoints)
	}
	if c.KochDepth < 0 {
		return fmt.Errorf("%w: koch depth must not be negative, got %d", ErrConfig, c.KochDepth)
	}
	if c.KochDepth > MaxKochDepth {
		return fmt.Errorf("%w: koch depth %d exceeds limit %d", ErrConfig, c.KochDepth, MaxKochDepth)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must not be negative, got %d", ErrConfig, c.Warmup)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrConfig, c.Frames)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: interval must not be negative, got %v", ErrConfig, c.Interval)
	}
	return nil
}

func (c Config) frames(def int) int {
	if c.Frames > 0 {
		return c.Frames
	}
	return def
}

func (c Config) interval(def time.Duration) time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	return def
}

// seeds derives one seed per stochastic stage so the fern and the chaos
// game draw from independent streams.
func (c Config) seeds() (fern, walk int64) {
	s := c.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return s, s + 1
}

// BuildStages validates cfg and generates all three sequences eagerly, in
// display order. Any validation or generation failure aborts the run before
// a window opens.
func BuildStages(cfg Config) ([]Stage, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	fernSeed, walkSeed := cfg.seeds()

	fernPts, err := fractal.IFS(fractal.BarnsleyMaps(), cfg.FernPoints,
		fractal.WithSeed(fernSeed), fractal.WithWarmup(cfg.Warmup))
	if err != nil {
		return nil, err
	}
	fern := Stage{
		Title:  "Barnsley Fern",
		Hex:    fernHex,
		Bounds: fractal.BBox{MinX: -3, MinY: 0, MaxX: 3, MaxY: 10},
		Points: fernPts,
		Mode:   ModePrefix,
		Sched:  Schedule{Frames: cfg.frames(200), Interval: cfg.interval(400 * time.Millisecond)},
	}

	base := fractal.Segment{A: fractal.Pt(-1.5, 0), B: fractal.Pt(1.5, 0)}
	koch := Stage{
		Title:  "Koch Curve",
		Hex:    kochHex,
		Bounds: fractal.BBox{MinX: -1.7, MinY: -1, MaxX: 1.7, MaxY: 1},
	}
	if cfg.KochByLevel {
		levels, err := fractal.KochLevels(base, cfg.KochDepth)
		if err != nil {
			return nil, err
		}
		koch.Levels = levels
		koch.Mode = ModeLevels
		// Frame index doubles as level index, so the frame count is
		// fixed by the depth. Only the interval is tunable here.
		koch.Sched = Schedule{Frames: cfg.KochDepth, Interval: cfg.interval(800 * time.Millisecond)}
	} else {
		segs, err := fractal.Koch(base, cfg.KochDepth)
		if err != nil {
			return nil, err
		}
		koch.Segments = segs
		koch.Mode = ModePrefix
		koch.Sched = Schedule{Frames: cfg.frames(64), Interval: cfg.interval(120 * time.Millisecond)}
	}

	va, vb, vc := fractal.Pt(0, 0), fractal.Pt(2, 4), fractal.Pt(4, 0)
	walk, err := fractal.ChaosGame(va, vb, vc, cfg.SierpinskiPoints,
		fractal.WithSeed(walkSeed), fractal.WithWarmup(cfg.Warmup))
	if err != nil {
		return nil, err
	}
	sierpinski := Stage{
		Title:  "Sierpinski Triangle",
		Hex:    sierpinskiHex,
		Bounds: fractal.BoundsOf([]fractal.Point{va, vb, vc}).Pad(1),
		Points: walk,
		Mode:   ModePrefix,
		Sched:  Schedule{Frames: cfg.frames(100), Interval: cfg.interval(100 * time.Millisecond)},
	}

	return []Stage{fern, koch, sierpinski}, nil
}
