package ui

import (
	"testing"

	"mad-life/internal/core"
)

type fakeSource struct {
	state core.PlayState
	steps int
	label string
	snap  core.ParameterSnapshot
}

func (f fakeSource) State() core.PlayState              { return f.state }
func (f fakeSource) Steps() int                         { return f.steps }
func (f fakeSource) ModeLabel() string                  { return f.label }
func (f fakeSource) Parameters() core.ParameterSnapshot { return f.snap }

func TestInfoFor(t *testing.T) {
	got := InfoFor(fakeSource{state: core.Playing, steps: 42, label: "RULE(B36/S23)"})
	want := Info{
		Top:         "Press space to play/pause, R to reset, N to update once",
		Bottom:      "PLAYING",
		BottomLeft:  "t=42",
		BottomRight: "MODE: RULE(B36/S23)",
	}
	if got != want {
		t.Fatalf("info = %+v, want %+v", got, want)
	}
	if paused := InfoFor(fakeSource{label: "BASIC"}); paused.Bottom != "PAUSED" || paused.BottomLeft != "t=0" {
		t.Fatalf("paused info = %+v", paused)
	}
}

func TestPopulationText(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Run",
		Params: []core.Parameter{{Key: "population", Value: "17"}},
	}}}
	if got := PopulationText(snap); got != "population: 17" {
		t.Fatalf("got %q", got)
	}
	if got := PopulationText(core.ParameterSnapshot{}); got != "population: --" {
		t.Fatalf("got %q", got)
	}
}
