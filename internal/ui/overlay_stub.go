//go:build !ebiten

package ui

import "mad-life/internal/render"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Source, render.Layout) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowGrid always reports true in headless builds.
func (o *Overlay) ShowGrid() bool { return true }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
