package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mad-life/pkg/life"
)

func TestParseTextRuleBased(t *testing.T) {
	src := `10 12
RULE_BASED B36/S23
1 1 1
2 3 1
10 12 1
`
	g, err := ParseText(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows != 10 || g.Cols != 12 || g.Mode != life.RuleBased || g.Rule != "B36/S23" {
		t.Fatalf("header = %+v", g)
	}
	want := []life.Seed{{Row: 0, Col: 0, State: life.Alive}, {Row: 1, Col: 2, State: life.Alive}, {Row: 9, Col: 11, State: life.Alive}}
	if len(g.Seeds) != len(want) {
		t.Fatalf("seeds = %v", g.Seeds)
	}
	for i := range want {
		if g.Seeds[i] != want[i] {
			t.Fatalf("seed %d = %+v, want %+v", i, g.Seeds[i], want[i])
		}
	}
}

func TestParseTextCustomStates(t *testing.T) {
	g, err := ParseText(strings.NewReader("5 5 CUSTOM 1 1 3 1 2 4 3 3 12 4 4 60"))
	if err != nil {
		t.Fatal(err)
	}
	states := []life.State{life.R, life.G, life.RG, life.RGB}
	for i, s := range states {
		if g.Seeds[i].State != s {
			t.Fatalf("seed %d state = %v, want %v", i, g.Seeds[i].State, s)
		}
	}
}

func TestParseTextErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrSyntax},
		{"bad rows", "x 5 BASIC", ErrSyntax},
		{"unknown mode", "5 5 LIFE", life.ErrUnknownMode},
		{"missing rule", "5 5 RULE_BASED", ErrSyntax},
		{"bad rule", "5 5 RULE_BASED 3/23 1 1 1", life.ErrInvalidRule},
		{"zero rows", "0 5 BASIC", life.ErrInvalidDimensions},
		{"partial cell", "5 5 BASIC 1 1 1 2 2", ErrSyntax},
		{"non-numeric cell", "5 5 BASIC 1 one 1", ErrSyntax},
		{"unknown state", "5 5 BASIC 1 1 7", life.ErrSeedState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseText(strings.NewReader(tc.src))
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	src := []byte(`
rows: 6
cols: 8
mode: aging
step_ms: 120
cells:
  - [1, 2, 1]
  - [6, 8, 2]
`)
	g, err := ParseYAML(src)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows != 6 || g.Cols != 8 || g.Mode != life.Aging || g.StepMillis != 120 {
		t.Fatalf("game = %+v", g)
	}
	if g.Seeds[1] != (life.Seed{Row: 5, Col: 7, State: life.Old}) {
		t.Fatalf("seed = %+v", g.Seeds[1])
	}
	if _, err := ParseYAML([]byte("rows: 3\ncols: 3\nmode: basic\ncells:\n  - [1, 1]\n")); !errors.Is(err, ErrSyntax) {
		t.Fatalf("short cell err = %v", err)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "glider.txt")
	yml := filepath.Join(dir, "glider.yaml")
	if err := os.WriteFile(txt, []byte("5 5 BASIC 1 2 1 2 3 1 3 1 1 3 2 1 3 3 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yml, []byte("rows: 5\ncols: 5\nmode: BASIC\ncells: [[1,2,1],[2,3,1],[3,1,1],[3,2,1],[3,3,1]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := Load(txt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load(yml)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Seeds) != 5 || len(b.Seeds) != 5 {
		t.Fatalf("seeds: text=%d yaml=%d", len(a.Seeds), len(b.Seeds))
	}
	for i := range a.Seeds {
		if a.Seeds[i] != b.Seeds[i] {
			t.Fatalf("seed %d differs: %+v vs %+v", i, a.Seeds[i], b.Seeds[i])
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
