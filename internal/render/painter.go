//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mad-life/pkg/life"
)

// GridPainter draws a grid as one texel per cell scaled onto the board.
type GridPainter struct {
	layout Layout
	style  Style
	img    *ebiten.Image
	buf    []byte
	lines  []Rect
}

// NewGridPainter allocates the texture for a grid with the given layout.
func NewGridPainter(layout Layout, style Style) *GridPainter {
	return &GridPainter{
		layout: layout,
		style:  style,
		img:    ebiten.NewImage(layout.Cols, layout.Rows),
		lines:  layout.GridLines(style.LineThickness),
	}
}

// Layout returns the geometry the painter draws with.
func (p *GridPainter) Layout() Layout { return p.layout }

// Draw paints the cells of g and, when lines is set, the grid lines.
func (p *GridPainter) Draw(screen *ebiten.Image, g *life.Grid, lines bool) {
	p.buf = FillGridRGBA(p.buf, g, p.style.Background)
	p.img.WritePixels(p.buf)

	board := p.layout.Board()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.layout.CellW), float64(p.layout.CellH))
	op.GeoM.Translate(float64(board.X), float64(board.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.img, op)

	if !lines {
		return
	}
	for _, l := range p.lines {
		fillRect(screen, l, p.style.GridLine)
	}
}

func fillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, clr, false)
}
