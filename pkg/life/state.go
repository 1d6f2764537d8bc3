package life

import "fmt"

// State is the discrete value held by a cell. The numeric codes double as the
// state codes used in seed files.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
	Old   State = 2

	// Species markers used by the custom mode.
	R State = 3
	G State = 4
	B State = 5

	// Hybrid markers. Each code is the least common multiple of the codes
	// of its species, so RG=lcm(3,4) and RGB=lcm(3,4,5).
	RG  State = 12
	BR  State = 15
	GB  State = 20
	RGB State = 60
)

var stateNames = map[State]string{
	Dead:  "DEAD",
	Alive: "ALIVE",
	Old:   "OLD",
	R:     "R",
	G:     "G",
	B:     "B",
	RG:    "RG",
	BR:    "BR",
	GB:    "GB",
	RGB:   "RGB",
}

// String returns the state name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Valid reports whether s is one of the known state codes.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// ParseState converts a numeric seed-file code into a State.
func ParseState(code int) (State, error) {
	if code < 0 || code > 255 || !State(code).Valid() {
		return Dead, fmt.Errorf("%w: unknown state code %d", ErrSeedState, code)
	}
	return State(code), nil
}

// species bits for the custom mode combination table.
const (
	speciesR uint8 = 1 << iota
	speciesG
	speciesB
)

var speciesOf = map[State]uint8{
	R:   speciesR,
	G:   speciesG,
	B:   speciesB,
	RG:  speciesR | speciesG,
	GB:  speciesG | speciesB,
	BR:  speciesB | speciesR,
	RGB: speciesR | speciesG | speciesB,
}

var stateOfSpecies = map[uint8]State{
	speciesR:                       R,
	speciesG:                       G,
	speciesB:                       B,
	speciesR | speciesG:            RG,
	speciesG | speciesB:            GB,
	speciesB | speciesR:            BR,
	speciesR | speciesG | speciesB: RGB,
}

// Producible reports whether s is a species or hybrid marker, i.e. a live
// custom-mode state that may persist or combine.
func (s State) Producible() bool {
	_, ok := speciesOf[s]
	return ok
}

// Combine returns the state born from two tied producible states: the union
// of their species. Combining anything else is a defect and panics.
func Combine(a, b State) State {
	ma, okA := speciesOf[a]
	mb, okB := speciesOf[b]
	if !okA || !okB {
		panic(fmt.Sprintf("life: cannot combine %v and %v", a, b))
	}
	s, ok := stateOfSpecies[ma|mb]
	if !ok {
		panic(fmt.Sprintf("life: no state for species mask %03b", ma|mb))
	}
	return s
}
