//go:build ebiten

package app

import (
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	style   render.Style
	layout  render.Layout
}

// New constructs a Game for the session. panelWidth > 0 adds a parameter
// panel to the right of the board.
func New(session *core.Session, style render.Style, panelWidth int) *Game {
	var layout render.Layout
	session.View(func(g *life.Grid) { layout = render.NewLayout(g.Config()) })
	return &Game{
		session: session,
		painter: render.NewGridPainter(layout, style),
		hud:     ui.NewHUD(session, layout, style, panelWidth),
		overlay: ui.NewOverlay(session, layout),
		style:   style,
		layout:  layout,
	}
}

// WindowSize is the outer size the window should open with.
func (g *Game) WindowSize() (int, int) {
	return int(g.layout.Width) + g.hud.Width(), int(g.layout.Height)
}

// Update handles per-frame logic and advances the session. Clicking a cell
// paints it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := g.layout.CellAt(float32(x), float32(y)); ok {
			g.session.Paint(row, col)
		}
	}
	g.overlay.Update()
	g.hud.Update(int(g.layout.Width))
	g.session.Advance(time.Now())
	return nil
}

// Draw renders the board, the info text and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.style.Background)
	g.session.View(func(grid *life.Grid) {
		g.painter.Draw(screen, grid, g.overlay.ShowGrid())
	})
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
