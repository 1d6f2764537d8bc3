package ui

import (
	"strconv"

	"mad-life/internal/core"
)

// HelpText is the key reminder printed above the board.
const HelpText = "Press space to play/pause, R to reset, N to update once"

// Source is the session surface the HUD reads from.
type Source interface {
	State() core.PlayState
	Steps() int
	ModeLabel() string
	Parameters() core.ParameterSnapshot
}

// Info is the text shown around the board.
type Info struct {
	Top         string
	Bottom      string
	BottomLeft  string
	BottomRight string
}

// InfoFor builds the info text for the current session state.
func InfoFor(src Source) Info {
	return Info{
		Top:         HelpText,
		Bottom:      src.State().String(),
		BottomLeft:  "t=" + strconv.Itoa(src.Steps()),
		BottomRight: "MODE: " + src.ModeLabel(),
	}
}

// PopulationText formats the population readout from a parameter snapshot.
func PopulationText(snap core.ParameterSnapshot) string {
	p, ok := snap.Lookup("population")
	if !ok {
		return "population: --"
	}
	return "population: " + p.Value
}
