package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/game"
)

// Canvas collects one frame's shapes and paints them into a screen region
// Canvas coordinates are cells relative to the frame's top-left corner
type Canvas struct {
	screen     tcell.Screen
	frame      Frame
	background core.RGB
	shapes     []game.Shape
}

// NewCanvas creates an empty canvas; SetFrame must be called before Paint has any effect
func NewCanvas(screen tcell.Screen, background core.RGB) *Canvas {
	return &Canvas{screen: screen, background: background}
}

func (c *Canvas) SetFrame(f Frame) {
	c.frame = f
}

// Clear drops the shapes collected for the previous frame
func (c *Canvas) Clear() {
	c.shapes = c.shapes[:0]
}

func (c *Canvas) Add(s game.Shape) {
	c.shapes = append(c.shapes, s)
}

// Paint fills the frame with the background, then draws shapes in insertion order
func (c *Canvas) Paint() {
	bg := tcell.StyleDefault.Background(tcellColor(c.background))
	for y := 0; y < c.frame.Height; y++ {
		for x := 0; x < c.frame.Width; x++ {
			c.screen.SetContent(c.frame.X+x, c.frame.Y+y, ' ', nil, bg)
		}
	}

	for _, s := range c.shapes {
		switch s := s.(type) {
		case game.Rect:
			c.paintRect(s)
		case game.Text:
			c.paintText(s, bg)
		case game.Line:
			c.paintLine(s, bg)
		}
	}
}

// paintRect covers the cells spanned by the rect, at least one cell in each direction
func (c *Canvas) paintRect(r game.Rect) {
	x0, x1 := span(r.Left, r.Width)
	y0, y1 := span(r.Top, r.Height)
	style := tcell.StyleDefault.Background(tcellColor(r.Fill))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, ' ', style)
		}
	}
}

// span returns the half-open cell range covered by a center and a size
func span(center, size float64) (int, int) {
	lo := int(math.Round(center - size/2))
	hi := int(math.Round(center + size/2))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (c *Canvas) paintText(t game.Text, bg tcell.Style) {
	style := bg.Foreground(tcellColor(t.Fill))
	x := int(math.Round(t.Left))
	y := int(math.Floor(t.Top))
	for _, r := range t.Content {
		c.set(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

// paintLine draws axis-aligned lines with box-drawing runes, anything else as a cell trail
func (c *Canvas) paintLine(l game.Line, bg tcell.Style) {
	style := bg.Foreground(tcellColor(l.Stroke))
	x1, y1 := int(math.Round(l.X1)), int(math.Floor(l.Y1))
	x2, y2 := int(math.Round(l.X2)), int(math.Floor(l.Y2))

	dx, dy := x2-x1, y2-y1
	steps := max(abs(dx), abs(dy))
	glyph := '─'
	switch {
	case dy == 0:
	case dx == 0:
		glyph = '│'
	default:
		glyph = '·'
	}
	if steps == 0 {
		c.set(x1, y1, glyph, style)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x1 + int(math.Round(float64(dx*i)/float64(steps)))
		y := y1 + int(math.Round(float64(dy*i)/float64(steps)))
		c.set(x, y, glyph, style)
	}
}

// set writes one cell given in canvas coordinates, clipped to the frame
func (c *Canvas) set(x, y int, r rune, style tcell.Style) {
	sx, sy := c.frame.X+x, c.frame.Y+y
	if !c.frame.Contains(sx, sy) {
		return
	}
	c.screen.SetContent(sx, sy, r, nil, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
