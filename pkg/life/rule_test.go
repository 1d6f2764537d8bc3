package life

import (
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"
)

func neighborsFromMask(mask uint8, live State) [8]State {
	var n [8]State
	for i := range n {
		if mask&(1<<i) != 0 {
			n[i] = live
		}
	}
	return n
}

func TestBasicRuleAllNeighbourhoods(t *testing.T) {
	r := basicRule{}
	for m := 0; m < 256; m++ {
		n := neighborsFromMask(uint8(m), Alive)
		live := bits.OnesCount8(uint8(m))
		for _, cur := range []State{Dead, Alive} {
			want := Dead
			switch {
			case live == 3:
				want = Alive
			case live == 2 && cur == Alive:
				want = Alive
			}
			if got, _ := r.Next(cur, 0, n); got != want {
				t.Fatalf("cur=%v live=%d: got %v, want %v", cur, live, got, want)
			}
		}
	}
}

func TestAgingBlockGrowsOldAndDies(t *testing.T) {
	g, err := New(Config{Rows: 6, Cols: 6, Mode: Aging})
	if err != nil {
		t.Fatal(err)
	}
	block := []Pos{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	seedAlive(t, g, block...)

	steps := []struct {
		state State
		age   int
	}{
		{Alive, 1},
		{Alive, 2},
		{Old, 3},
		{Dead, 0},
	}
	for i, want := range steps {
		g.Update()
		for _, p := range block {
			c := g.Cell(p.Row, p.Col)
			if c.State() != want.state || c.Age() != want.age {
				t.Fatalf("generation %d cell %v: state=%v age=%d, want %v age=%d",
					i+1, p, c.State(), c.Age(), want.state, want.age)
			}
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d after old block died", g.Population())
	}
}

func TestAgingRuleTransitions(t *testing.T) {
	r := agingRule{}
	two := neighborsFromMask(0b11, Alive)
	threeOld := neighborsFromMask(0b111, Old)
	cases := []struct {
		name      string
		cur       State
		age       int
		n         [8]State
		wantState State
		wantAge   int
	}{
		{"old counts as alive for birth", Dead, 0, threeOld, Alive, 0},
		{"old survivor dies", Old, 3, two, Dead, 0},
		{"lonely dies and resets age", Alive, 1, neighborsFromMask(0b1, Alive), Dead, 0},
		{"survivor ages", Alive, 0, two, Alive, 1},
		{"third survival turns old", Alive, 2, two, Old, 3},
		{"dead stays dead", Dead, 0, two, Dead, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, age := r.Next(tc.cur, tc.age, tc.n)
			if s != tc.wantState || age != tc.wantAge {
				t.Fatalf("got %v age=%d, want %v age=%d", s, age, tc.wantState, tc.wantAge)
			}
		})
	}
	if r.Color(Old) != colorOld || r.Color(Alive) != colorAlive {
		t.Fatal("aging colours do not follow state")
	}
}

func TestRuleBasedHighLife(t *testing.T) {
	g, err := New(Config{Rows: 5, Cols: 5, Mode: RuleBased, Rule: "B36/S23"})
	if err != nil {
		t.Fatal(err)
	}
	r := g.rule
	six := neighborsFromMask(0b111111, Alive)
	if s, _ := r.Next(Dead, 0, six); s != Alive {
		t.Fatalf("B36 should birth on six neighbours, got %v", s)
	}
	if s, _ := r.Next(Alive, 0, six); s != Dead {
		t.Fatalf("S23 should kill on six neighbours, got %v", s)
	}
}

func TestRuleBasedB3S23MatchesBasic(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	seeds := randomSeeds(rng, 16, 16, []State{Alive})

	basic, err := New(Config{Rows: 16, Cols: 16, Mode: Basic})
	if err != nil {
		t.Fatal(err)
	}
	ruled, err := New(Config{Rows: 16, Cols: 16, Mode: RuleBased, Rule: "B3/S23"})
	if err != nil {
		t.Fatal(err)
	}
	if err := basic.Initialize(seeds); err != nil {
		t.Fatal(err)
	}
	if err := ruled.Initialize(seeds); err != nil {
		t.Fatal(err)
	}
	for gen := 1; gen <= 50; gen++ {
		basic.Update()
		ruled.Update()
		if !slices.Equal(basic.States(nil), ruled.States(nil)) {
			t.Fatalf("B3/S23 diverges from basic at generation %d", gen)
		}
	}
}

func TestNewRuleUnknownMode(t *testing.T) {
	if _, err := NewRule(Mode(0), ""); err == nil {
		t.Fatal("expected error for unregistered mode")
	}
}
