package game

import (
	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// Square is one slot of the stimulus set; it is repositioned, never moved
type Square struct {
	Sprite
	Index int
}

// NewSquare creates a square at the field center with the given fill
func NewSquare(index int, proj *Projection, fill core.RGB) *Square {
	s := &Square{
		Sprite: newSprite(proj, constants.SquareSide, constants.SquareSide, fill),
		Index:  index,
	}
	s.Install()
	s.Reset()
	return s
}

// Set repositions the square and commits
func (s *Square) Set(x, y float64) {
	s.Place(x, y, 0, 0)
}

// SetFill changes the drawable color directly; it is presentation state, not physics
func (s *Square) SetFill(fill core.RGB) {
	s.image.Fill = fill
}

func (s *Square) Fill() core.RGB {
	return s.image.Fill
}
