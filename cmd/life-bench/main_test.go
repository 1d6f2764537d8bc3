package main

import (
	"testing"

	"mad-life/pkg/life"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, 4,,16 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 4 || got[2] != 16 {
		t.Fatalf("got %v", got)
	}
	for _, bad := range []string{"1,x", "0", "-2"} {
		if _, err := parseInts(bad); err == nil {
			t.Errorf("parseInts(%q) accepted", bad)
		}
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	for _, mode := range []life.Mode{life.Basic, life.Custom} {
		seq := runScenario(scenario{mode: mode, size: 24, workers: 1}, 20, 0.4, 9)
		par := runScenario(scenario{mode: mode, size: 24, workers: 3}, 20, 0.4, 9)
		if seq.err != nil || par.err != nil {
			t.Fatalf("%v: errors %v / %v", mode, seq.err, par.err)
		}
		if seq.population != par.population {
			t.Fatalf("%v: population %d with 1 worker, %d with 3", mode, seq.population, par.population)
		}
	}
	if res := runScenario(scenario{mode: life.RuleBased, rule: "bogus", size: 4, workers: 1}, 1, 0.5, 1); res.err == nil {
		t.Fatal("bad rule accepted")
	}
}
