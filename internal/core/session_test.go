package core

import (
	"testing"
	"time"

	"mad-life/internal/logging"
	"mad-life/pkg/life"
)

var blinker = []life.Seed{
	{Row: 2, Col: 1, State: life.Alive},
	{Row: 2, Col: 2, State: life.Alive},
	{Row: 2, Col: 3, State: life.Alive},
}

func newSession(t *testing.T, cfg life.Config, seeds []life.Seed) (*Session, *time.Time) {
	t.Helper()
	g, err := life.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSession(g, seeds, 80*time.Millisecond, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestSessionStartsPaused(t *testing.T) {
	s, clock := newSession(t, life.Config{Rows: 5, Cols: 5, Mode: life.Basic}, blinker)
	if s.Playing() || s.State() != Paused {
		t.Fatal("new session should be paused")
	}
	if s.Advance(clock.Add(time.Second)) {
		t.Fatal("paused session advanced")
	}
	if s.Steps() != 0 {
		t.Fatalf("steps = %d", s.Steps())
	}
}

func TestSessionAdvancesAtStepSpeed(t *testing.T) {
	s, clock := newSession(t, life.Config{Rows: 5, Cols: 5, Mode: life.Basic}, blinker)
	if got := s.Toggle(); got != Playing {
		t.Fatalf("toggle = %v", got)
	}
	if s.Advance(clock.Add(79 * time.Millisecond)) {
		t.Fatal("advanced before the step was due")
	}
	if !s.Advance(clock.Add(80 * time.Millisecond)) {
		t.Fatal("did not advance when the step was due")
	}
	if s.Steps() != 1 {
		t.Fatalf("steps = %d, want 1", s.Steps())
	}
	s.View(func(g *life.Grid) {
		for _, r := range []int{1, 2, 3} {
			if !g.Cell(r, 2).Alive() {
				t.Fatalf("blinker did not rotate: (%d,2) dead", r)
			}
		}
	})
	if got := s.Toggle(); got != Paused {
		t.Fatalf("second toggle = %v", got)
	}
}

func TestSessionRestartRestoresSeeds(t *testing.T) {
	s, _ := newSession(t, life.Config{Rows: 5, Cols: 5, Mode: life.Basic}, blinker)
	s.Toggle()
	s.StepOnce()
	s.StepOnce()
	s.StepOnce()
	if s.Playing() {
		t.Fatal("StepOnce should pause")
	}
	if s.Steps() != 3 {
		t.Fatalf("steps = %d, want 3", s.Steps())
	}
	s.Restart()
	if s.Steps() != 0 || s.Playing() {
		t.Fatalf("restart left steps=%d playing=%v", s.Steps(), s.Playing())
	}
	s.View(func(g *life.Grid) {
		if g.Population() != 3 {
			t.Fatalf("population = %d, want 3", g.Population())
		}
		for _, seed := range blinker {
			if !g.Cell(seed.Row, seed.Col).Alive() {
				t.Fatalf("seed %v not restored", seed)
			}
		}
	})
}

func TestSessionRejectsBadSeeds(t *testing.T) {
	g, err := life.New(life.Config{Rows: 3, Cols: 3, Mode: life.Basic})
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewSession(g, []life.Seed{{Row: 5, Col: 0, State: life.Alive}}, 0, logging.Discard())
	if err == nil {
		t.Fatal("expected error for out-of-bounds seed")
	}
}

func TestSessionModeLabel(t *testing.T) {
	cases := []struct {
		cfg  life.Config
		want string
	}{
		{life.Config{Rows: 3, Cols: 3, Mode: life.Basic}, "BASIC"},
		{life.Config{Rows: 3, Cols: 3, Mode: life.Aging}, "AGING"},
		{life.Config{Rows: 3, Cols: 3, Mode: life.RuleBased, Rule: "B36/S23"}, "RULE(B36/S23)"},
		{life.Config{Rows: 3, Cols: 3, Mode: life.Custom}, "CUSTOM"},
	}
	for _, tc := range cases {
		s, _ := newSession(t, tc.cfg, nil)
		if got := s.ModeLabel(); got != tc.want {
			t.Errorf("label = %q, want %q", got, tc.want)
		}
	}
}

func TestSessionParameters(t *testing.T) {
	s, _ := newSession(t, life.Config{Rows: 5, Cols: 6, Mode: life.RuleBased, Rule: "B3/S23"}, blinker)
	snap := s.Parameters()
	want := map[string]string{
		"rows":       "5",
		"cols":       "6",
		"rule":       "B3/S23",
		"mode":       "RULE_BASED",
		"population": "3",
		"state":      "PAUSED",
		"step_ms":    "80",
	}
	for key, v := range want {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != v {
			t.Errorf("%s = %q, want %q", key, p.Value, v)
		}
	}
}

func TestSessionSetIntParameter(t *testing.T) {
	s, _ := newSession(t, life.Config{Rows: 5, Cols: 5, Mode: life.Basic}, blinker)
	if !s.SetIntParameter("step_ms", 5) {
		t.Fatal("step_ms rejected")
	}
	if got := s.StepSpeed(); got != 10*time.Millisecond {
		t.Fatalf("step = %v, want clamp to 10ms", got)
	}
	if !s.SetIntParameter("workers", 4) {
		t.Fatal("workers rejected")
	}
	if p, _ := s.Parameters().Lookup("workers"); p.Value != "4" {
		t.Fatalf("workers = %q", p.Value)
	}
	if s.SetIntParameter("rows", 9) {
		t.Fatal("rows should not be adjustable")
	}
}

func TestSessionPaint(t *testing.T) {
	s, _ := newSession(t, life.Config{Rows: 4, Cols: 4, Mode: life.Custom}, nil)
	if err := s.Paint(1, 2); err != nil {
		t.Fatal(err)
	}
	s.View(func(g *life.Grid) {
		if got := g.Cell(1, 2).State(); got != life.R {
			t.Fatalf("painted state = %v, want R", got)
		}
	})
	if err := s.Paint(1, 2); err != nil {
		t.Fatal(err)
	}
	s.View(func(g *life.Grid) {
		if g.Population() != 0 {
			t.Fatal("second paint should clear the cell")
		}
	})
	if err := s.Paint(9, 9); err == nil {
		t.Fatal("off-grid paint accepted")
	}
}
