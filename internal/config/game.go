package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"mad-life/pkg/life"
)

// ErrSyntax marks a configuration file that cannot be read as a game.
var ErrSyntax = errors.New("malformed configuration")

// Game is the content of a configuration file: grid shape, mode and the
// initial cells, already translated to zero-based coordinates.
type Game struct {
	Rows       int
	Cols       int
	Mode       life.Mode
	Rule       string
	StepMillis int
	Seeds      []life.Seed
}

// Load reads a game from path. Files ending in .yaml or .yml are decoded as
// YAML; anything else uses the whitespace-separated text format.
func Load(path string) (Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("open config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return ParseText(strings.NewReader(string(data)))
}

// ParseText reads the text format:
//
//	<rows> <cols> <MODE> [<RULE>]
//	<row> <col> <state>
//	...
//
// The rule is present only for RULE_BASED. Coordinates are 1-based.
func ParseText(r io.Reader) (Game, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Game{}, fmt.Errorf("read config: %w", err)
	}
	if len(words) < 3 {
		return Game{}, fmt.Errorf("%w: expected <rows> <cols> <mode>", ErrSyntax)
	}

	var g Game
	var err error
	if g.Rows, err = strconv.Atoi(words[0]); err != nil {
		return Game{}, fmt.Errorf("%w: rows %q", ErrSyntax, words[0])
	}
	if g.Cols, err = strconv.Atoi(words[1]); err != nil {
		return Game{}, fmt.Errorf("%w: cols %q", ErrSyntax, words[1])
	}
	if g.Mode, err = life.ParseMode(words[2]); err != nil {
		return Game{}, err
	}
	rest := words[3:]
	if g.Mode == life.RuleBased {
		if len(rest) == 0 {
			return Game{}, fmt.Errorf("%w: RULE_BASED needs a rule", ErrSyntax)
		}
		g.Rule, rest = rest[0], rest[1:]
	}

	if len(rest)%3 != 0 {
		return Game{}, fmt.Errorf("%w: %d trailing values after the last cell", ErrSyntax, len(rest)%3)
	}
	for i := 0; i < len(rest); i += 3 {
		var triple [3]int
		for k := range triple {
			if triple[k], err = strconv.Atoi(rest[i+k]); err != nil {
				return Game{}, fmt.Errorf("%w: cell %d: %q is not a number", ErrSyntax, i/3+1, rest[i+k])
			}
		}
		seed, err := seedFrom(triple)
		if err != nil {
			return Game{}, fmt.Errorf("cell %d: %w", i/3+1, err)
		}
		g.Seeds = append(g.Seeds, seed)
	}
	return g, g.Validate()
}

type yamlGame struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Mode   string  `yaml:"mode"`
	Rule   string  `yaml:"rule"`
	StepMS int     `yaml:"step_ms"`
	Cells  [][]int `yaml:"cells"`
}

// ParseYAML decodes the YAML format. Cells are [row, col, state] triples
// with 1-based coordinates, as in the text format.
func ParseYAML(data []byte) (Game, error) {
	var doc yamlGame
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Game{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	mode, err := life.ParseMode(doc.Mode)
	if err != nil {
		return Game{}, err
	}
	g := Game{Rows: doc.Rows, Cols: doc.Cols, Mode: mode, Rule: doc.Rule, StepMillis: doc.StepMS}
	for i, cell := range doc.Cells {
		if len(cell) != 3 {
			return Game{}, fmt.Errorf("%w: cell %d has %d values, want 3", ErrSyntax, i+1, len(cell))
		}
		seed, err := seedFrom([3]int{cell[0], cell[1], cell[2]})
		if err != nil {
			return Game{}, fmt.Errorf("cell %d: %w", i+1, err)
		}
		g.Seeds = append(g.Seeds, seed)
	}
	return g, g.Validate()
}

func seedFrom(triple [3]int) (life.Seed, error) {
	state, err := life.ParseState(triple[2])
	if err != nil {
		return life.Seed{}, err
	}
	return life.Seed{Row: triple[0] - 1, Col: triple[1] - 1, State: state}, nil
}

// Validate checks the grid settings, including the rule string, so a bad
// file is rejected before any grid exists.
func (g Game) Validate() error {
	return g.GridConfig(Run{}).Validate()
}

// GridConfig combines the file with the run settings that position and
// schedule the grid.
func (g Game) GridConfig(run Run) life.Config {
	return life.Config{
		Rows:    g.Rows,
		Cols:    g.Cols,
		Mode:    g.Mode,
		Rule:    g.Rule,
		Width:   float32(run.WindowWidth),
		Height:  float32(run.WindowHeight),
		Margin:  float32(run.Margin),
		Workers: run.Workers,
	}
}

// LogSummary reports what was loaded.
func (g Game) LogSummary(logger *log.Logger) {
	kv := []any{"rows", g.Rows, "cols", g.Cols, "mode", g.Mode, "cells", len(g.Seeds)}
	if g.Mode == life.RuleBased {
		kv = append(kv, "rule", g.Rule)
	}
	logger.Info("configuration loaded", kv...)
}
