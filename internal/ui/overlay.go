//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// Overlay holds the optional visuals: grid lines (G) and a population
// readout (P).
type Overlay struct {
	src    Source
	layout render.Layout

	showGrid       bool
	showPopulation bool
}

// NewOverlay constructs an overlay with grid lines on.
func NewOverlay(src Source, layout render.Layout) *Overlay {
	return &Overlay{src: src, layout: layout, showGrid: true}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showPopulation = !o.showPopulation
	}
}

// ShowGrid reports whether grid lines should be drawn.
func (o *Overlay) ShowGrid() bool { return o.showGrid }

// Draw renders the population readout just below the help line.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showPopulation {
		return
	}
	s := PopulationText(o.src.Parameters())
	drawCentered(screen, s, basicfont.Face7x13, o.layout.Width/2, o.layout.Margin/2+10, color.RGBA{R: 90, G: 90, B: 90, A: 255})
}
