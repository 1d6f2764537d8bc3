package life

import (
	"fmt"
	"image/color"
)

// producible lists the custom-mode live states in code order.
var producible = [...]State{R, G, B, RG, BR, GB, RGB}

// tally counts producible neighbours per state and records which states
// reach the highest count.
type tally struct {
	max    int
	states [len(producible)]State
	n      int
}

func (t *tally) tied() []State { return t.states[:t.n] }

func (t *tally) has(s State) bool {
	for _, m := range t.tied() {
		if m == s {
			return true
		}
	}
	return false
}

func tallyNeighbors(neighbors [8]State) tally {
	var counts [len(producible)]int
	for _, s := range neighbors {
		for i, p := range producible {
			if s == p {
				counts[i]++
				break
			}
		}
	}
	var t tally
	for _, c := range counts {
		if c > t.max {
			t.max = c
		}
	}
	for i, c := range counts {
		if c == t.max {
			t.states[t.n] = producible[i]
			t.n++
		}
	}
	return t
}

// customRule is the multi-species variant. Live cells survive only while
// their own state is among the most common producible neighbour states, and
// dead cells are born from the most common one or the hybrid of two tied ones.
type customRule struct{}

func (customRule) Alive(s State) bool { return s != Dead }

func (customRule) Next(cur State, age int, neighbors [8]State) (State, int) {
	t := tallyNeighbors(neighbors)
	switch {
	case cur.Producible():
		age++
		if t.max <= 1 || t.max > 4 || !t.has(cur) {
			return Dead, 0
		}
		if age == oldAge {
			return Old, age
		}
		return cur, age
	case cur == Old:
		return Dead, 0
	case cur == Dead:
		if t.max != 2 && t.max != 3 {
			return Dead, 0
		}
		tied := t.tied()
		switch len(tied) {
		case 1:
			return tied[0], 0
		case 2:
			return Combine(tied[0], tied[1]), 0
		}
		// Three or more tied states: no birth.
		return Dead, 0
	}
	panic(fmt.Sprintf("life: custom cell in state %v", cur))
}

func (customRule) Color(s State) color.RGBA {
	switch s {
	case Old:
		return colorOld
	case R:
		return color.RGBA{R: 255, A: 255}
	case G:
		return color.RGBA{G: 255, A: 255}
	case B:
		return color.RGBA{B: 255, A: 255}
	case RG:
		return color.RGBA{R: 255, G: 255, A: 255}
	case GB:
		return color.RGBA{G: 255, B: 255, A: 255}
	case BR:
		return color.RGBA{R: 255, B: 255, A: 255}
	case RGB:
		return color.RGBA{A: 255}
	}
	return colorNone
}

func init() {
	registerRule(Custom, func(string) (Rule, error) { return customRule{}, nil })
}
