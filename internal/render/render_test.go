package render

import (
	"image/color"
	"testing"

	"mad-life/pkg/life"
)

func TestFillGridRGBAUsesCellColours(t *testing.T) {
	g, err := life.New(life.Config{Rows: 2, Cols: 2, Mode: life.Custom})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Initialize([]life.Seed{{Row: 0, Col: 1, State: life.R}, {Row: 1, Col: 0, State: life.Old}}); err != nil {
		t.Fatal(err)
	}
	buf := FillGridRGBA(nil, g, color.White)
	want := []byte{
		255, 255, 255, 255, // dead
		255, 0, 0, 255, // R
		100, 100, 100, 255, // Old
		255, 255, 255, 255, // dead
	}
	if string(buf) != string(want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
	again := FillGridRGBA(buf, g, color.White)
	if &again[0] != &buf[0] {
		t.Fatal("buffer with enough capacity was reallocated")
	}
}

func TestLayoutGeometry(t *testing.T) {
	l := NewLayout(life.Config{Rows: 10, Cols: 20, Mode: life.Basic, Width: 600, Height: 600, Margin: 60})
	if l.CellW != 24 || l.CellH != 48 {
		t.Fatalf("cell = %vx%v, want 24x48", l.CellW, l.CellH)
	}
	board := l.Board()
	if board != (Rect{X: 60, Y: 60, W: 480, H: 480}) {
		t.Fatalf("board = %+v", board)
	}
	lines := l.GridLines(1)
	if len(lines) != 11+21 {
		t.Fatalf("got %d grid lines, want 32", len(lines))
	}
	if last := lines[10]; last.Y != 540 || last.W != 480 {
		t.Fatalf("bottom line = %+v", last)
	}
	if last := lines[len(lines)-1]; last.X != 540 || last.H != 480 {
		t.Fatalf("right line = %+v", last)
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(life.Config{Rows: 10, Cols: 10, Mode: life.Basic, Width: 600, Height: 600, Margin: 60})
	cases := []struct {
		x, y     float32
		row, col int
		ok       bool
	}{
		{60, 60, 0, 0, true},
		{539, 539, 9, 9, true},
		{108, 61, 0, 1, true},
		{59, 100, 0, 0, false},
		{540, 100, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := l.CellAt(tc.x, tc.y)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Errorf("CellAt(%v,%v) = %d,%d,%v", tc.x, tc.y, row, col, ok)
		}
	}
}
