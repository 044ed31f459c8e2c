package game

import "github.com/lixenwraith/oddball-pong/core"

// Sprite is an entity that can move; X/Y is the predicted position until Commit
type Sprite struct {
	Width, Height float64
	X, Y          float64
	VX, VY        float64 // Units per second

	proj  *Projection
	image Rect
}

func newSprite(proj *Projection, width, height float64, fill core.RGB) Sprite {
	return Sprite{
		Width:  width,
		Height: height,
		proj:   proj,
		image:  Rect{Fill: fill},
	}
}

// Install sizes the drawable for the current projection
func (s *Sprite) Install() {
	s.image.Width = s.proj.ScaleX(s.Width)
	s.image.Height = s.proj.ScaleY(s.Height)
}

// Place sets position and velocity, then commits
func (s *Sprite) Place(x, y, vx, vy float64) {
	s.X, s.Y = x, y
	s.VX, s.VY = vx, vy
	s.Commit()
}

func (s *Sprite) Reset() {
	s.Place(0, 0, 0, 0)
}

// Predict integrates velocity; bouncing and clamping belong to Interact
func (s *Sprite) Predict(dt float64) {
	s.X += s.VX * dt
	s.Y += s.VY * dt
}

func (s *Sprite) Interact() {}

// Commit writes the projected position into the drawable
func (s *Sprite) Commit() {
	s.image.Left = s.proj.OrthoX(s.X)
	s.image.Top = s.proj.OrthoY(s.Y)
}

func (s *Sprite) Draw(cv Canvas) {
	cv.Add(s.image)
}

// Image returns the committed drawable
func (s *Sprite) Image() Rect {
	return s.image
}
