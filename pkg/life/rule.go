package life

import (
	"fmt"
	"image/color"
)

// Rule is the transition behaviour shared by every cell of a grid.
//
// Next must be a pure function of the cell's committed state and age and the
// committed states of its eight neighbours. It returns the staged state and
// age; the grid commits both together.
type Rule interface {
	Alive(s State) bool
	Next(cur State, age int, neighbors [8]State) (State, int)
	Color(s State) color.RGBA
}

// RuleFactory builds the Rule for a mode. The rule string is only meaningful
// for RuleBased.
type RuleFactory func(rule string) (Rule, error)

var rules = map[Mode]RuleFactory{}

func registerRule(m Mode, f RuleFactory) {
	if f == nil {
		return
	}
	rules[m] = f
}

// NewRule returns the Rule registered for mode m.
func NewRule(m Mode, rule string) (Rule, error) {
	f, ok := rules[m]
	if !ok {
		return nil, &ConfigError{Field: "mode", Value: m.String(), Err: ErrUnknownMode}
	}
	return f(rule)
}

var (
	colorNone  = color.RGBA{}
	colorAlive = color.RGBA{A: 255}
	colorOld   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

func countAlive(r Rule, neighbors [8]State) int {
	n := 0
	for _, s := range neighbors {
		if r.Alive(s) {
			n++
		}
	}
	return n
}

// basicRule is Conway's B3/S23.
type basicRule struct{}

func (basicRule) Alive(s State) bool { return s == Alive }

func (r basicRule) Next(cur State, _ int, neighbors [8]State) (State, int) {
	live := countAlive(r, neighbors)
	alive := r.Alive(cur)
	switch {
	case alive && (live < 2 || live > 3):
		return Dead, 0
	case !alive && live == 3:
		return Alive, 0
	}
	return cur, 0
}

func (r basicRule) Color(s State) color.RGBA {
	if s == Alive {
		return colorAlive
	}
	return colorNone
}

// agingRule follows the basic rule but a cell turns Old on its third
// surviving generation and dies one generation later.
type agingRule struct{}

const oldAge = 3

func (agingRule) Alive(s State) bool { return s == Alive || s == Old }

func (r agingRule) Next(cur State, age int, neighbors [8]State) (State, int) {
	live := countAlive(r, neighbors)
	alive := r.Alive(cur)
	if alive {
		age++
	}
	next := cur
	switch {
	case alive && (live < 2 || live > 3):
		next = Dead
	case !alive && live == 3:
		next = Alive
	case cur == Old:
		next = Dead
	}
	if next == Dead {
		return Dead, 0
	}
	if next == Alive && age == oldAge {
		next = Old
	}
	return next, age
}

func (agingRule) Color(s State) color.RGBA {
	switch s {
	case Alive:
		return colorAlive
	case Old:
		return colorOld
	}
	return colorNone
}

// specRule applies an arbitrary B/S rule.
type specRule struct {
	spec RuleSpec
}

func (specRule) Alive(s State) bool { return s == Alive }

func (r specRule) Next(cur State, _ int, neighbors [8]State) (State, int) {
	live := countAlive(r, neighbors)
	if r.Alive(cur) {
		if r.spec.Survives(live) {
			return Alive, 0
		}
		return Dead, 0
	}
	if r.spec.Births(live) {
		return Alive, 0
	}
	return cur, 0
}

func (specRule) Color(s State) color.RGBA { return basicRule{}.Color(s) }

// Spec exposes the parsed rule.
func (r specRule) Spec() RuleSpec { return r.spec }

func init() {
	registerRule(Basic, func(string) (Rule, error) { return basicRule{}, nil })
	registerRule(Aging, func(string) (Rule, error) { return agingRule{}, nil })
	registerRule(RuleBased, func(rule string) (Rule, error) {
		spec, err := ParseRule(rule)
		if err != nil {
			return nil, err
		}
		return specRule{spec: spec}, nil
	})
}

func mustAllow(m Mode, s State) {
	if !m.Allows(s) {
		panic(fmt.Sprintf("life: state %v is not valid in mode %v", s, m))
	}
}
