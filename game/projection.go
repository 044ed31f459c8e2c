package game

import (
	"github.com/lixenwraith/oddball-pong/constants"
)

// Projection maps world coordinates onto canvas coordinates
// Screen y grows downward, world y grows upward; the strip above the field holds the scoreboard
type Projection struct {
	canvasWidth  float64
	canvasHeight float64
}

// NewProjection creates a projection for a canvas of w by h cells
func NewProjection(w, h int) *Projection {
	p := &Projection{}
	p.Resize(w, h)
	return p
}

// Resize recomputes scale factors; dimensions below the minimum are clamped and reported
func (p *Projection) Resize(w, h int) (clamped bool) {
	if w < constants.MinCanvasWidth {
		w, clamped = constants.MinCanvasWidth, true
	}
	if h < constants.MinCanvasHeight {
		h, clamped = constants.MinCanvasHeight, true
	}
	p.canvasWidth = float64(w)
	p.canvasHeight = float64(h)
	return clamped
}

// Size returns the canvas dimensions in use
func (p *Projection) Size() (w, h float64) {
	return p.canvasWidth, p.canvasHeight
}

func (p *Projection) ScaleX(x float64) float64 {
	return x * p.canvasWidth / constants.OrthoWidth
}

func (p *Projection) ScaleY(y float64) float64 {
	return y * p.canvasHeight / constants.OrthoHeight
}

// OrthoX maps world x to canvas x
func (p *Projection) OrthoX(x float64) float64 {
	return p.ScaleX(x + constants.OrthoWidth/2)
}

// OrthoY maps world y to canvas y
func (p *Projection) OrthoY(y float64) float64 {
	return p.ScaleY(constants.OrthoHeight - constants.FieldHeight/2 - y)
}
