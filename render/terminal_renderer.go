package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/game"
	"github.com/lixenwraith/oddball-pong/input"
	"github.com/lixenwraith/oddball-pong/status"
)

// Drawer is anything that can refill a canvas, normally the Game
type Drawer interface {
	Draw(cv game.Canvas)
}

// TerminalRenderer composes the text strip, the canvas and the button bar into a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	bar    *input.ButtonBar
	layout Layout

	// statusReg is shown in the text strip when set
	statusReg *status.Registry
}

// NewTerminalRenderer creates a renderer; statusReg may be nil
func NewTerminalRenderer(screen tcell.Screen, background core.RGB, bar *input.ButtonBar, statusReg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		canvas:    NewCanvas(screen, background),
		bar:       bar,
		statusReg: statusReg,
	}
}

// Resize recomputes the layout and places the canvas and buttons
// The returned error is ErrTerminalTooSmall or nil; the layout is applied either way
func (r *TerminalRenderer) Resize(width, height int) (Layout, error) {
	l, err := ComputeLayout(width, height)
	r.layout = l
	r.canvas.SetFrame(l.Canvas)
	r.bar.Layout(l.Buttons.X, l.Buttons.Y, l.Buttons.Width)
	return l, err
}

// RenderFrame draws one complete frame
func (r *TerminalRenderer) RenderFrame(d Drawer) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault

	r.drawTextStrip(defaultStyle)

	d.Draw(r.canvas)
	r.canvas.Paint()

	r.drawButtons(defaultStyle)

	r.screen.Show()
}

// drawTextStrip draws the title, or the metrics line when a registry is attached
func (r *TerminalRenderer) drawTextStrip(style tcell.Style) {
	f := r.layout.Text
	text := constants.TitleText
	if r.statusReg != nil {
		text = StatusLine(r.statusReg)
	}
	x := f.X + max((f.Width-runewidth.StringWidth(text))/2, 0)
	drawString(r.screen, x, f.Y, f.X+f.Width, text, style.Bold(r.statusReg == nil))
}

// drawButtons draws the button bar, the pressed button in reverse video
func (r *TerminalRenderer) drawButtons(style tcell.Style) {
	pressed := r.bar.Pressed()
	limit := r.layout.Buttons.X + r.layout.Buttons.Width
	for _, btn := range r.bar.Buttons() {
		drawString(r.screen, btn.X, btn.Y, limit, btn.Label, style.Reverse(btn.Key == pressed))
	}
}

// drawString writes s from (x, y), stopping before column limit
func drawString(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if x+w > limit {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
}
