package game

import "github.com/lixenwraith/oddball-pong/core"

// Shape is a drawable in canvas coordinates, produced by Commit and consumed by Draw
type Shape interface {
	isShape()
}

// Rect is a filled rectangle positioned by its center
type Rect struct {
	Left, Top     float64 // Center
	Width, Height float64
	Fill          core.RGB
}

// Text is a label positioned by its top-left corner
type Text struct {
	Left, Top float64
	Content   string
	Fill      core.RGB
}

// Line is a straight stroke between two points
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         core.RGB
}

func (Rect) isShape() {}
func (Text) isShape() {}
func (Line) isShape() {}

// Canvas is the render boundary: cleared and refilled with every entity's drawables per frame
type Canvas interface {
	Clear()
	Add(s Shape)
}
