package render

import (
	"image/color"

	"mad-life/pkg/life"
)

// Style holds the colours and line settings of the board.
type Style struct {
	Background    color.RGBA
	Foreground    color.RGBA
	GridLine      color.RGBA
	LineThickness float32
}

// DefaultStyle is a white board with light grey grid lines and black text.
var DefaultStyle = Style{
	Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Foreground:    color.RGBA{A: 255},
	GridLine:      color.RGBA{R: 200, G: 200, B: 200, A: 255},
	LineThickness: 1,
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Layout places a grid inside a window with a margin on every side.
type Layout struct {
	Rows, Cols    int
	Margin        float32
	CellW, CellH  float32
	Width, Height float32
}

// NewLayout derives the board geometry from a grid configuration.
func NewLayout(cfg life.Config) Layout {
	cw, ch := cfg.CellSize()
	return Layout{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Margin: cfg.Margin,
		CellW:  cw,
		CellH:  ch,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Board is the area covered by cells.
func (l Layout) Board() Rect {
	return Rect{X: l.Margin, Y: l.Margin, W: l.CellW * float32(l.Cols), H: l.CellH * float32(l.Rows)}
}

// GridLines returns the rows+1 horizontal and cols+1 vertical lines that
// frame every cell, each as a thin rectangle.
func (l Layout) GridLines(thickness float32) []Rect {
	board := l.Board()
	lines := make([]Rect, 0, l.Rows+l.Cols+2)
	for i := 0; i <= l.Rows; i++ {
		lines = append(lines, Rect{X: board.X, Y: board.Y + float32(i)*l.CellH, W: board.W, H: thickness})
	}
	for i := 0; i <= l.Cols; i++ {
		lines = append(lines, Rect{X: board.X + float32(i)*l.CellW, Y: board.Y, W: thickness, H: board.H})
	}
	return lines
}

// CellAt maps a window position to the cell under it.
func (l Layout) CellAt(x, y float32) (row, col int, ok bool) {
	board := l.Board()
	if x < board.X || y < board.Y || x >= board.X+board.W || y >= board.Y+board.H {
		return 0, 0, false
	}
	return int((y - board.Y) / l.CellH), int((x - board.X) / l.CellW), true
}
