package tui

// canvas is a braille-cell pixel buffer. Every terminal cell carries a 2x4
// microgrid, so a w by h cell canvas resolves 2w by 4h pixels.
type canvas struct {
	w, h int // cells
	mask [][]uint8
}

// brailleBits maps a microgrid position (column, row) within one cell to
// its bit in the braille pattern block at U+2800.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newCanvas(w, h int) *canvas {
	mask := make([][]uint8, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, mask: mask}
}

// set lights a single micro-pixel. Out-of-range coordinates are dropped.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.mask[cy][cx] |= brailleBits[mx%2][my%4]
}

// line rasterizes a segment onto the microgrid using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows renders the buffer as one string per cell row. Empty cells stay
// plain spaces so rows keep their full width.
func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			if m := c.mask[y][x]; m != 0 {
				row[x] = rune(0x2800 + int(m))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
