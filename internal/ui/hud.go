//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"mad-life/internal/core"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the info text around the board and, when width > 0, a parameter
// panel to the right of the window.
type HUD struct {
	src    Source
	layout render.Layout
	style  render.Style
	width  int

	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	panelOffsetX int
}

// NewHUD constructs a HUD for the session laid out as layout.
func NewHUD(src Source, layout render.Layout, style render.Style, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, layout: layout, style: style, width: width}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Width is the panel width.
func (h *HUD) Width() int { return h.width }

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the info text and the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.drawInfo(screen)
	if h.width <= 0 {
		return
	}
	height := int(h.layout.Height)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.panelOffsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawInfo(screen *ebiten.Image) {
	face := basicfont.Face7x13
	info := InfoFor(h.src)
	fg := h.style.Foreground
	width := h.layout.Width
	margin := h.layout.Margin
	topY := margin/2 - 5
	bottomY := h.layout.Height - margin/2

	drawCentered(screen, info.Top, face, width/2, topY, fg)
	drawCentered(screen, info.Bottom, face, width/2, bottomY, fg)
	drawLeft(screen, info.BottomLeft, face, margin, bottomY, fg)
	w := float32(text.BoundString(face, info.BottomRight).Dx())
	drawLeft(screen, info.BottomRight, face, width-margin-w, bottomY, fg)
}

func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, cy float32, clr color.Color) {
	b := text.BoundString(face, s)
	drawLeft(dst, s, face, cx-float32(b.Dx())/2, cy, clr)
}

// drawLeft draws s with its left edge at x, vertically centred on cy.
func drawLeft(dst *ebiten.Image, s string, face font.Face, x, cy float32, clr color.Color) {
	b := text.BoundString(face, s)
	baseline := int(cy) + b.Dy()/2 - b.Max.Y
	text.Draw(dst, s, face, int(x)-b.Min.X, baseline, clr)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.intSetter == nil || !h.canAdjust(state, direction) {
		return
	}
	target := state.control.Clamp(state.intValue + direction*state.step())
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.intSetter == nil || !state.hasValue {
		return false
	}
	if direction < 0 {
		return state.intValue > state.control.Min
	}
	return state.intValue < state.control.Max
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Parameters", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}

	y = controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += textLine
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding+8, y, color.RGBA{R: 170, G: 170, B: 180, A: 255})
			y += textLine
		}
		y += textLine / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func (s *hudControlState) step() int {
	if s.control.Step <= 0 {
		return 1
	}
	return s.control.Step
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 24
	textLine       = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
