package game

import (
	"math"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/input"
)

// Paddle is a player's bat; index 0 is left (A/Z keys), index 1 is right (K/M keys)
type Paddle struct {
	Sprite
	Index int

	keys KeySource
	ball *Ball
	cues CuePlayer
}

// NewPaddle creates a paddle at its rest position
func NewPaddle(index int, proj *Projection, keys KeySource, ball *Ball, cues CuePlayer) *Paddle {
	if cues == nil {
		cues = silentCues{}
	}
	p := &Paddle{
		Sprite: newSprite(proj, constants.PaddleWidth, constants.PaddleHeight, core.RGBWhite),
		Index:  index,
		keys:   keys,
		ball:   ball,
		cues:   cues,
	}
	p.Install()
	p.Reset()
	return p
}

// Reset puts the paddle at rest, margin away from its own wall
func (p *Paddle) Reset() {
	x := constants.OrthoWidth/2 - constants.PaddleMargin
	if p.Index == 0 {
		x = -x
	}
	p.Place(x, 0, 0, 0)
}

// Predict sets vertical speed from the player's keys, then integrates
func (p *Paddle) Predict(dt float64) {
	p.VY = p.velocityFor(p.keys.Key())
	p.Sprite.Predict(dt)
}

func (p *Paddle) velocityFor(k input.KeyCode) float64 {
	up, down := input.KeyA, input.KeyZ
	if p.Index == 1 {
		up, down = input.KeyK, input.KeyM
	}
	switch k {
	case up:
		return constants.PaddleSpeed
	case down:
		return -constants.PaddleSpeed
	default:
		return 0
	}
}

// Interact clamps the paddle to the field, then bounces the ball on contact
// Paddle and ball are treated as infinitely thin: contact is a point test on the
// predicted positions, so a fast enough ball can pass a paddle within one tick
func (p *Paddle) Interact() {
	limit := constants.FieldHeight/2 - p.Height/2
	p.Y = math.Max(-limit, math.Min(p.Y, limit))

	if p.touches(p.ball) {
		p.ball.X = p.X
		p.ball.VX = -p.ball.VX
		p.ball.SpeedUp(p)
		p.cues.PlayCue(core.SoundHit)
	}
}

// touches reports whether the ball is strictly within the paddle's span and behind it
func (p *Paddle) touches(b *Ball) bool {
	half := p.Height / 2
	if b.Y <= p.Y-half || b.Y >= p.Y+half {
		return false
	}
	if p.Index == 0 {
		return b.X < p.X
	}
	return b.X > p.X
}
