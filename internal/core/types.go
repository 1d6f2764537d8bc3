package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// PlayState is whether a session advances on its own.
type PlayState uint8

const (
	Paused PlayState = iota
	Playing
)

func (p PlayState) String() string {
	if p == Playing {
		return "PLAYING"
	}
	return "PAUSED"
}
