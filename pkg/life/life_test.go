package life

import "testing"

func newBasic(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(Config{Rows: rows, Cols: cols, Mode: Basic})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func seedAlive(t *testing.T, g *Grid, cells ...Pos) {
	t.Helper()
	seeds := make([]Seed, len(cells))
	for i, p := range cells {
		seeds[i] = Seed{Row: p.Row, Col: p.Col, State: Alive}
	}
	if err := g.Initialize(seeds); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
}

func expectAlive(t *testing.T, g *Grid, label string, cells ...Pos) {
	t.Helper()
	want := map[Pos]bool{}
	for _, p := range cells {
		want[p] = true
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			alive := g.Cell(r, c).Alive()
			if alive != want[Pos{r, c}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, r, c, alive, want[Pos{r, c}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newBasic(t, 5, 5)
	seedAlive(t, g, Pos{1, 2}, Pos{2, 2}, Pos{3, 2})

	g.Update()
	expectAlive(t, g, "after first step", Pos{2, 1}, Pos{2, 2}, Pos{2, 3})

	g.Update()
	expectAlive(t, g, "after second step", Pos{1, 2}, Pos{2, 2}, Pos{3, 2})

	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	g := newBasic(t, 5, 5)
	seedAlive(t, g, Pos{0, 1}, Pos{1, 2}, Pos{2, 0}, Pos{2, 1}, Pos{2, 2})

	for i := 0; i < 4; i++ {
		g.Update()
	}
	expectAlive(t, g, "after four steps", Pos{1, 2}, Pos{2, 3}, Pos{3, 1}, Pos{3, 2}, Pos{3, 3})
}

func TestGliderWrapsAcrossEdges(t *testing.T) {
	g := newBasic(t, 6, 6)
	seedAlive(t, g, Pos{0, 1}, Pos{1, 2}, Pos{2, 0}, Pos{2, 1}, Pos{2, 2})

	// 24 generations move the glider six cells down and right: a full lap.
	for i := 0; i < 24; i++ {
		g.Update()
	}
	expectAlive(t, g, "after a full lap", Pos{0, 1}, Pos{1, 2}, Pos{2, 0}, Pos{2, 1}, Pos{2, 2})
}
