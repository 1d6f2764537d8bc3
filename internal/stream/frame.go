// Package stream publishes session generations to websocket clients and
// exposes a small HTTP control surface.
package stream

import (
	"mad-life/internal/core"
	"mad-life/pkg/life"
)

// Frame is the JSON view of one committed generation. Cells holds the state
// code of every cell, row-major.
type Frame struct {
	Generation int    `json:"generation"`
	Playing    bool   `json:"playing"`
	Mode       string `json:"mode"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Population int    `json:"population"`
	Cells      []int  `json:"cells"`
}

// Snapshot captures the current generation of a session.
func Snapshot(s *core.Session) Frame {
	f := Frame{Playing: s.Playing(), Mode: s.ModeLabel()}
	s.View(func(g *life.Grid) {
		f.Generation = g.Generation()
		f.Rows, f.Cols = g.Rows(), g.Cols()
		f.Population = g.Population()
		f.Cells = make([]int, 0, f.Rows*f.Cols)
		g.Each(func(c life.Cell) { f.Cells = append(f.Cells, int(c.State())) })
	})
	return f
}
