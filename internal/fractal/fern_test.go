package fractal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"fracplot/internal/fractal"
)

// TestIFSDeterministicWithSeed verifies that a fixed seed reproduces the
// exact same sequence across independent runs.
func TestIFSDeterministicWithSeed(t *testing.T) {
	maps := fractal.BarnsleyMaps()
	a, err := fractal.IFS(maps, 500, fractal.WithSeed(42))
	require.NoError(t, err)
	b, err := fractal.IFS(maps, 500, fractal.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := fractal.IFS(maps, 500, fractal.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, a, c, "WithRand over the same source must match WithSeed")
}

// TestIFSLength verifies the output holds exactly n points, with and
// without a warm-up prefix.
func TestIFSLength(t *testing.T) {
	maps := fractal.BarnsleyMaps()
	pts, err := fractal.IFS(maps, 1000, fractal.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, pts, 1000)

	pts, err = fractal.IFS(maps, 1000, fractal.WithSeed(1), fractal.WithWarmup(10))
	require.NoError(t, err)
	require.Len(t, pts, 1000)
}

// TestIFSEmpty verifies n == 0 yields an empty sequence for any valid map set.
func TestIFSEmpty(t *testing.T) {
	pts, err := fractal.IFS(fractal.BarnsleyMaps(), 0, fractal.WithSeed(7))
	require.NoError(t, err)
	require.Empty(t, pts)
}

// TestIFSNegativeCount verifies n < 0 fails fast before generation.
func TestIFSNegativeCount(t *testing.T) {
	_, err := fractal.IFS(fractal.BarnsleyMaps(), -1)
	require.ErrorIs(t, err, fractal.ErrCount)
}

// TestIFSBadProbabilities verifies malformed map sets are rejected before
// any point is produced.
func TestIFSBadProbabilities(t *testing.T) {
	short := []fractal.AffineMap{
		{Matrix: [2][2]float64{{1, 0}, {0, 1}}, Prob: 0.5},
		{Matrix: [2][2]float64{{1, 0}, {0, 1}}, Prob: 0.4},
	}
	_, err := fractal.IFS(short, 10, fractal.WithSeed(1))
	require.ErrorIs(t, err, fractal.ErrProbability)

	negative := []fractal.AffineMap{
		{Matrix: [2][2]float64{{1, 0}, {0, 1}}, Prob: 1.5},
		{Matrix: [2][2]float64{{1, 0}, {0, 1}}, Prob: -0.5},
	}
	_, err = fractal.IFS(negative, 10, fractal.WithSeed(1))
	require.ErrorIs(t, err, fractal.ErrProbability)

	_, err = fractal.IFS(nil, 10, fractal.WithSeed(1))
	require.ErrorIs(t, err, fractal.ErrProbability)
}

// TestIFSZeroProbabilityNeverSelected verifies a zero-probability entry is
// never drawn: the zero-probability map would jump to (100,100), the only
// live map pins every point to (1,1).
func TestIFSZeroProbabilityNeverSelected(t *testing.T) {
	maps := []fractal.AffineMap{
		{Offset: fractal.Pt(100, 100), Prob: 0},
		{Offset: fractal.Pt(1, 1), Prob: 1},
	}
	pts, err := fractal.IFS(maps, 5000, fractal.WithSeed(3))
	require.NoError(t, err)
	for _, p := range pts {
		require.Equal(t, fractal.Pt(1, 1), p)
	}
}

// TestIFSRecoverableStep verifies every consecutive pair of points is
// related by one of the maps in the set.
func TestIFSRecoverableStep(t *testing.T) {
	maps := fractal.BarnsleyMaps()
	start := fractal.Pt(0, 0)
	pts, err := fractal.IFS(maps, 200, fractal.WithSeed(11), fractal.WithStart(start))
	require.NoError(t, err)

	prev := start
	for i, p := range pts {
		found := false
		for _, m := range maps {
			q := m.Apply(prev)
			if q == p {
				found = true
				break
			}
		}
		require.True(t, found, "point %d is not an affine image of its predecessor", i)
		prev = p
	}
}

// TestIFSWarmupSkipsPrefix verifies warm-up only shifts the reported window:
// a run with warm-up k equals the tail of a longer run from the same seed.
func TestIFSWarmupSkipsPrefix(t *testing.T) {
	maps := fractal.BarnsleyMaps()
	long, err := fractal.IFS(maps, 110, fractal.WithSeed(9))
	require.NoError(t, err)
	short, err := fractal.IFS(maps, 100, fractal.WithSeed(9), fractal.WithWarmup(10))
	require.NoError(t, err)
	require.Equal(t, long[10:], short)
}

// TestIFSStartOverride verifies WithStart feeds the first iteration.
func TestIFSStartOverride(t *testing.T) {
	shift := []fractal.AffineMap{
		{Matrix: [2][2]float64{{1, 0}, {0, 1}}, Offset: fractal.Pt(1, 0), Prob: 1},
	}
	pts, err := fractal.IFS(shift, 3, fractal.WithSeed(1), fractal.WithStart(fractal.Pt(5, 5)))
	require.NoError(t, err)
	require.Equal(t, []fractal.Point{fractal.Pt(6, 5), fractal.Pt(7, 5), fractal.Pt(8, 5)}, pts)
}

// TestBarnsleyMapsValid verifies the canonical fern set passes validation.
func TestBarnsleyMapsValid(t *testing.T) {
	maps := fractal.BarnsleyMaps()
	require.Len(t, maps, 4)
	require.NoError(t, fractal.ValidateMaps(maps))
}
