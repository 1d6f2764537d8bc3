package render

import (
	"image/color"

	"mad-life/pkg/life"
)

// FillGridRGBA writes one RGBA pixel per cell of g into buf, row-major, and
// returns the buffer. Cells without a colour (alpha 0) take background. buf
// is reallocated when it is too small.
func FillGridRGBA(buf []byte, g *life.Grid, background color.Color) []byte {
	n := g.Rows() * g.Cols() * 4
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	bg := toRGBA(background)
	i := 0
	g.Each(func(c life.Cell) {
		col := c.Color()
		if col.A == 0 {
			col = bg
		}
		buf[i+0] = col.R
		buf[i+1] = col.G
		buf[i+2] = col.B
		buf[i+3] = col.A
		i += 4
	})
	return buf
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
