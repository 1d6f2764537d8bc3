// Package tui renders a session in a terminal with tcell. Each cell takes
// two terminal columns so the board keeps a square aspect.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"
	"mad-life/pkg/life"
)

const frameInterval = 16 * time.Millisecond

// Terminal drives a session from a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	session *core.Session
	style   render.Style
	logger  *log.Logger
}

// New returns a Terminal drawing on an initialised screen.
func New(screen tcell.Screen, session *core.Session, style render.Style, logger *log.Logger) *Terminal {
	return &Terminal{screen: screen, session: session, style: style, logger: logger}
}

// Run processes key events and advances the session until ctx is done or the
// user quits.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if t.HandleKey(ev) {
					t.logger.Info("quit", "steps", t.session.Steps())
					return nil
				}
				t.Draw()
			case *tcell.EventResize:
				t.screen.Sync()
				t.Draw()
			}
		case now := <-ticker.C:
			if t.session.Advance(now) {
				t.Draw()
			}
		}
	}
}

// HandleKey applies a key press and reports whether the user asked to quit.
func (t *Terminal) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		t.session.Toggle()
	case 'r', 'R':
		t.session.Restart()
	case 'n', 'N':
		t.session.StepOnce()
	}
	return false
}

// Draw paints the help line, the board and the status line.
func (t *Terminal) Draw() {
	t.screen.Clear()
	text := tcell.StyleDefault
	drawText(t.screen, 0, 0, text, ui.HelpText+", Q to quit")

	t.session.View(func(g *life.Grid) {
		g.Each(func(c life.Cell) {
			col := c.Color()
			if col.A == 0 {
				col = t.style.Background
			}
			style := tcell.StyleDefault.Background(toColor(col))
			x, y := c.Col()*2, c.Row()+1
			t.screen.SetContent(x, y, ' ', nil, style)
			t.screen.SetContent(x+1, y, ' ', nil, style)
		})
	})

	info := ui.InfoFor(t.session)
	status := fmt.Sprintf("%s  %s  %s", info.Bottom, info.BottomLeft, info.BottomRight)
	drawText(t.screen, 0, t.session.Size().H+1, text, status)
	t.screen.Show()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
