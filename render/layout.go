package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/oddball-pong/constants"
)

// ErrTerminalTooSmall reports a terminal that cannot hold a legible canvas
var ErrTerminalTooSmall = errors.New("terminal too small")

// Frame is a rectangular screen region in cells
type Frame struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the frame
func (f Frame) Contains(x, y int) bool {
	return x >= f.X && y >= f.Y && x < f.X+f.Width && y < f.Y+f.Height
}

// Layout splits the terminal into a text strip, the canvas and the button strip
type Layout struct {
	Text    Frame
	Canvas  Frame
	Buttons Frame
}

// ComputeLayout sizes the canvas for a termW by termH terminal
// A tall terminal gives the canvas the full width, otherwise 60% of it; the canvas keeps its
// aspect ratio and shrinks to fit the rows left between the text and button strips.
// When the result is below the playable minimum the layout is still returned together with
// ErrTerminalTooSmall.
func ComputeLayout(termW, termH int) (Layout, error) {
	termW, termH = max(termW, 0), max(termH, 0)
	rowsPerCol := constants.CanvasAspect * constants.CellAspect

	width := termW
	if float64(termH) <= 1.2*float64(termW)*constants.CellAspect {
		width = int(math.Round(constants.CanvasAspect * float64(termW)))
	}
	height := int(math.Round(float64(width) * rowsPerCol))

	avail := max(termH-constants.TextFrameRows-constants.ButtonFrameRows, 0)
	if height > avail {
		height = avail
		width = min(int(math.Round(float64(height)/rowsPerCol)), termW)
	}

	left := (termW - width) / 2
	l := Layout{
		Text:   Frame{X: left, Y: 0, Width: width, Height: constants.TextFrameRows},
		Canvas: Frame{X: left, Y: constants.TextFrameRows, Width: width, Height: height},
		Buttons: Frame{
			X:      0,
			Y:      constants.TextFrameRows + height + constants.ButtonFrameRows - 1,
			Width:  termW,
			Height: 1,
		},
	}

	if width < constants.MinPlayableWidth || height < constants.MinPlayableHeight {
		return l, fmt.Errorf("%w: %dx%d gives a %dx%d canvas", ErrTerminalTooSmall, termW, termH, width, height)
	}
	return l, nil
}
