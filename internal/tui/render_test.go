package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fracplot/internal/anim"
	"fracplot/internal/fractal"
)

func testStage(pts []fractal.Point, frames int) anim.Stage {
	return anim.Stage{
		Title:  "test",
		Hex:    "#FFFFFF",
		Bounds: fractal.BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Points: pts,
		Mode:   anim.ModePrefix,
		Sched:  anim.Schedule{Frames: frames, Interval: time.Millisecond},
	}
}

func brailleCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x2800 && r <= 0x28FF {
			n++
		}
	}
	return n
}

// TestScreenMicroCorners checks the unit square lands exactly on the
// microgrid corners at zoom 1, with Y flipped.
func TestScreenMicroCorners(t *testing.T) {
	m := New(testStage(nil, 1), 1, 1)
	x, y := m.screenMicro(fractal.Pt(0, 0), 10, 5)
	require.Equal(t, 0, x)
	require.Equal(t, 19, y)

	x, y = m.screenMicro(fractal.Pt(1, 1), 10, 5)
	require.Equal(t, 19, x)
	require.Equal(t, 0, y)
}

// TestScreenMicroZoomPan covers magnification around the window center and
// the cell-sized pan offsets.
func TestScreenMicroZoomPan(t *testing.T) {
	m := New(testStage(nil, 1), 1, 1)
	m.zoom = 2
	x, _ := m.screenMicro(fractal.Pt(0.75, 0.5), 10, 5)
	require.Equal(t, 19, x)

	m.zoom = 1
	m.offsetX, m.offsetY = 1, 2
	x, y := m.screenMicro(fractal.Pt(0, 0), 10, 5)
	require.Equal(t, 2, x)
	require.Equal(t, 27, y)
}

// TestCellToWorldCorners inverts the projection at the plot corners.
func TestCellToWorldCorners(t *testing.T) {
	m := New(testStage(nil, 1), 1, 1)

	x, y, ok := m.cellToWorld(0, 4, 10, 5)
	require.True(t, ok)
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 0, y, 1e-9)

	x, y, ok = m.cellToWorld(9, 0, 10, 5)
	require.True(t, ok)
	require.InDelta(t, 1, x, 1e-9)
	require.InDelta(t, 1, y, 1e-9)
}

// TestCellToWorldRoundTrip projects a hovered cell to world space and back
// under zoom and pan, landing in the same cell.
func TestCellToWorldRoundTrip(t *testing.T) {
	m := New(testStage(nil, 1), 1, 1)
	m.zoom = 1.44
	m.offsetX, m.offsetY = 2, -1

	wx, wy, ok := m.cellToWorld(5, 2, 10, 5)
	require.True(t, ok)
	sx, sy := m.screenMicro(fractal.Pt(wx, wy), 10, 5)
	require.Equal(t, 5, sx/2)
	require.Equal(t, 2, sy/4)
}

// TestRenderPlotPrefix draws nothing before the first tick and the whole
// sequence once the schedule has run out.
func TestRenderPlotPrefix(t *testing.T) {
	pts := []fractal.Point{fractal.Pt(0.5, 0.5)}
	m := New(testStage(pts, 10), 1, 3)

	out := m.renderPlot(10, 5)
	require.Len(t, strings.Split(out, "\n"), 5)
	require.Zero(t, brailleCount(out))

	m.frame = 10
	out = m.renderPlot(10, 5)
	require.Equal(t, 1, brailleCount(out))
	require.Contains(t, out, string(rune(0x2810)))
}

// TestRenderPlotSegments rasterizes a horizontal segment through every
// cell of its row.
func TestRenderPlotSegments(t *testing.T) {
	st := testStage(nil, 1)
	st.Segments = []fractal.Segment{{A: fractal.Pt(0, 0.5), B: fractal.Pt(1, 0.5)}}
	m := New(st, 1, 1)
	m.frame = 1

	out := m.renderPlot(10, 5)
	require.Equal(t, 10, brailleCount(out))
	require.Contains(t, out, string(rune(0x2812)))
}

// TestRenderPlotHoverMarker overlays the hover ring at the marked cell.
func TestRenderPlotHoverMarker(t *testing.T) {
	m := New(testStage([]fractal.Point{fractal.Pt(0.5, 0.5)}, 1), 1, 1)
	m.frame = 1
	m.hovering = true
	m.hoverMicX, m.hoverMicY = 9, 9

	require.Contains(t, m.renderPlot(10, 5), "◯")
}

// TestNearestVertexMicro snaps to the closest visible vertex and falls
// back to the probe when nothing is drawn yet.
func TestNearestVertexMicro(t *testing.T) {
	st := testStage([]fractal.Point{fractal.Pt(0, 0), fractal.Pt(1, 1)}, 1)
	m := New(st, 1, 1)
	m.frame = 1

	bx, by := m.nearestVertexMicro(2, 16, 10, 5)
	require.Equal(t, 0, bx)
	require.Equal(t, 19, by)

	bx, by = m.nearestVertexMicro(18, 1, 10, 5)
	require.Equal(t, 19, bx)
	require.Equal(t, 0, by)

	empty := New(testStage(nil, 1), 1, 1)
	bx, by = empty.nearestVertexMicro(7, 7, 10, 5)
	require.Equal(t, 7, bx)
	require.Equal(t, 7, by)
}
