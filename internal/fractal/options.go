package fractal

import (
	"math/rand"
	"time"
)

// genConfig holds the knobs shared by the stochastic generators. Each run
// gets its own copy; nothing is carried between calls.
type genConfig struct {
	rng    *rand.Rand
	warmup int
	start  Point
}

// Option customizes a stochastic generator run.
type Option func(*genConfig)

// WithRand supplies an explicit random source. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fractal: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed derives the random source from seed, making the run fully
// deterministic.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWarmup discards the first n iterations before recording begins, so
// transients from the starting point stay out of the output. The output
// length is unchanged. Panics on negative n.
func WithWarmup(n int) Option {
	if n < 0 {
		panic("fractal: WithWarmup with negative count")
	}
	return func(c *genConfig) { c.warmup = n }
}

// WithStart overrides the generator's default starting point.
func WithStart(p Point) Option {
	return func(c *genConfig) { c.start = p }
}

// newGenConfig applies opts over the generator's defaults. Without an
// explicit source the run is seeded from the wall clock and varies per run.
func newGenConfig(start Point, opts []Option) genConfig {
	cfg := genConfig{start: start}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}
