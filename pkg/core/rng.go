package core

import (
	"math/rand/v2"

	"mad-life/pkg/life"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Pick returns a random element of states; it returns life.Dead when states is empty.
func (r *RNG) Pick(states []life.State) life.State {
	if len(states) == 0 {
		return life.Dead
	}
	return states[r.r.IntN(len(states))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// seedPalette lists the states a random soup is drawn from in each mode.
var seedPalette = map[life.Mode][]life.State{
	life.Basic:     {life.Alive},
	life.Aging:     {life.Alive},
	life.RuleBased: {life.Alive},
	life.Custom:    {life.R, life.G, life.B},
}

// RandomSeeds fills roughly density of a rows x cols grid with live cells
// appropriate for mode, in row-major order.
func RandomSeeds(seed int64, rows, cols int, mode life.Mode, density float64) []life.Seed {
	rng := NewRNG(seed)
	palette := seedPalette[mode]
	var seeds []life.Seed
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Chance(density) {
				seeds = append(seeds, life.Seed{Row: r, Col: c, State: rng.Pick(palette)})
			}
		}
	}
	return seeds
}
