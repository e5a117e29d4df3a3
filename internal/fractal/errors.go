package fractal

import "errors"

var (
	// ErrProbability indicates an affine map set whose probabilities are
	// negative or do not sum to 1.
	ErrProbability = errors.New("fractal: invalid probability set")
	// ErrCount indicates a negative point count.
	ErrCount = errors.New("fractal: point count must not be negative")
	// ErrDepth indicates a negative recursion depth.
	ErrDepth = errors.New("fractal: recursion depth must not be negative")
)
