package window

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fracplot/internal/anim"
	"fracplot/internal/fractal"
)

var background = color.RGBA{R: 0x0B, G: 0x0F, B: 0x14, A: 0xFF}

const helpLine = "space pause  r restart  f finish  q next  ctrl+q quit"

// view carries the per-stage drawing state: the logical size, the plot
// color, and the cached plot image with its CPU-side point buffer.
type view struct {
	w, h  int
	clr   color.RGBA
	plot  *ebiten.Image
	pix   *image.RGBA
	drawn int
	dirty bool
	reset bool
}

func (v *view) resetView(st anim.Stage) {
	v.clr = parseHex(st.Hex)
	v.w, v.h = logicalSize(st.Bounds)
	v.drawn = 0
	v.dirty = true
	v.reset = true
}

// setPix writes one plot-colored pixel into the CPU buffer.
func (v *view) setPix(x, y int) {
	if x < 0 || y < 0 || x >= v.w || y >= v.h {
		return
	}
	i := v.pix.PixOffset(x, y)
	v.pix.Pix[i+0] = v.clr.R
	v.pix.Pix[i+1] = v.clr.G
	v.pix.Pix[i+2] = v.clr.B
	v.pix.Pix[i+3] = v.clr.A
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.plot == nil || g.plot.Bounds().Dx() != g.w || g.plot.Bounds().Dy() != g.h {
		if g.plot != nil {
			g.plot.Deallocate()
		}
		g.plot = ebiten.NewImage(g.w, g.h)
		g.pix = image.NewRGBA(image.Rect(0, 0, g.w, g.h))
		g.reset = true
	}
	if g.reset {
		clear(g.pix.Pix)
		g.plot.Clear()
		g.drawn = 0
		g.reset = false
		g.dirty = true
	}
	if g.dirty {
		g.redraw()
		g.dirty = false
	}

	screen.Fill(background)
	screen.DrawImage(g.plot, nil)
	ebitenutil.DebugPrintAt(screen, g.hud(), 8, 8)
	ebitenutil.DebugPrintAt(screen, helpLine, 8, g.h-20)
}

// redraw refreshes the plot image for the current frame. Point stages grow
// monotonically, so only the pixels added since the last redraw are
// written; segment stages redraw in full.
func (g *game) redraw() {
	st := g.stage()
	pts, segs := st.Visible(g.frame)
	if len(st.Points) > 0 {
		for _, p := range pts[g.drawn:] {
			g.setPix(g.pixelXY(p))
		}
		g.drawn = len(pts)
		g.plot.WritePixels(g.pix.Pix)
		return
	}
	g.plot.Clear()
	for _, s := range segs {
		x0, y0 := g.pixelXY(s.A)
		x1, y1 := g.pixelXY(s.B)
		vector.StrokeLine(g.plot, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, g.clr, true)
	}
}

// pixelXY projects a world coordinate onto the plot image. Y grows upward
// in world space and downward in image space.
func (g *game) pixelXY(p fractal.Point) (int, int) {
	b := g.stage().Bounds
	nx := (p.X - b.MinX) / (b.MaxX - b.MinX)
	ny := (p.Y - b.MinY) / (b.MaxY - b.MinY)
	return int(nx * float64(g.w-1)), int((1 - ny) * float64(g.h-1))
}

func (g *game) hud() string {
	st := g.stage()
	state := "playing"
	switch {
	case g.done:
		state = "complete"
	case !g.playing:
		state = "paused"
	}
	var progress string
	if st.Mode == anim.ModeLevels {
		progress = fmt.Sprintf("level %d/%d", st.Level(g.frame), max(0, len(st.Levels)-1))
	} else {
		pts, segs := st.Visible(g.frame)
		unit := "points"
		if len(st.Segments) > 0 {
			unit = "segments"
		}
		progress = fmt.Sprintf("%d/%d %s", len(pts)+len(segs), st.Total(), unit)
	}
	return fmt.Sprintf("%s (%d/%d)  %s  %s", st.Title, g.idx+1, len(g.stages), progress, state)
}

// logicalSize fits the stage bounds into a window capped at maxDim on the
// longer side, preserving aspect.
func logicalSize(b fractal.BBox) (int, int) {
	const maxDim = 800
	dx, dy := b.MaxX-b.MinX, b.MaxY-b.MinY
	if dx <= 0 || dy <= 0 {
		return maxDim, maxDim
	}
	if dx >= dy {
		return maxDim, max(1, int(maxDim*dy/dx))
	}
	return max(1, int(maxDim*dx/dy)), maxDim
}

// parseHex decodes "#RRGGBB" with a white fallback for malformed input.
func parseHex(s string) color.RGBA {
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
		}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}
