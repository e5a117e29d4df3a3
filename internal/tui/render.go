package tui

import (
	"strings"

	"fracplot/internal/fractal"
)

// screenMicro maps a world coordinate into the canvas microgrid, applying
// zoom around the window center and the pan offsets. Y grows upward in
// world space and downward on screen.
func (m Model) screenMicro(p fractal.Point, w, h int) (int, int) {
	b := m.stage.Bounds
	nx := (p.X - b.MinX) / (b.MaxX - b.MinX)
	ny := (p.Y - b.MinY) / (b.MaxY - b.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(h*4-1)) + m.offsetY*4
	return sx, sy
}

// cellToWorld converts a plot cell back to world coordinates using the
// stage bounds, zoom, and pan.
func (m Model) cellToWorld(cx, cy, w, h int) (float64, float64, bool) {
	b := m.stage.Bounds
	if !b.Valid() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return b.MinX + nx*(b.MaxX-b.MinX), b.MinY + ny*(b.MaxY-b.MinY), true
}

// nearestVertexMicro finds the plotted vertex closest to a microgrid
// position, for the hover marker. Falls back to the probe itself when
// nothing is visible yet.
func (m Model) nearestVertexMicro(hx, hy, w, h int) (int, int) {
	best := 1<<31 - 1
	bx, by := hx, hy
	consider := func(p fractal.Point) {
		mx, my := m.screenMicro(p, w, h)
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	}
	pts, segs := m.stage.Visible(m.frame)
	for _, p := range pts {
		consider(p)
	}
	for _, s := range segs {
		consider(s.A)
		consider(s.B)
	}
	return bx, by
}

// renderPlot draws the stage's visible content for the current frame into
// a braille canvas and returns the styled rows.
func (m Model) renderPlot(w, h int) string {
	cv := newCanvas(w, h)
	if m.stage.Bounds.Valid() {
		pts, segs := m.stage.Visible(m.frame)
		for _, p := range pts {
			cv.set(m.screenMicro(p, w, h))
		}
		for _, s := range segs {
			x0, y0 := m.screenMicro(s.A, w, h)
			x1, y1 := m.screenMicro(s.B, w, h)
			cv.line(x0, y0, x1, y1)
		}
	}
	rows := cv.rows()
	st := plotStyle(m.stage.Hex)
	out := make([]string, len(rows))
	for y, row := range rows {
		out[y] = st.Render(row)
	}
	// hover highlight: mark the nearest plotted vertex
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < len(rows) {
			r := []rune(rows[cy])
			if cx >= 0 && cx < len(r) {
				out[cy] = st.Render(string(r[:cx])) + hoverStyle.Render("◯") + st.Render(string(r[cx+1:]))
			}
		}
	}
	return strings.Join(out, "\n")
}
