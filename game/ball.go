package game

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// maxServeOffset is the field's diagonal half-angle; serves never leave it
var maxServeOffset = math.Atan(constants.FieldHeight / constants.OrthoWidth)

// Ball bounces off the top and bottom walls and reports when it leaves the field sideways
type Ball struct {
	Sprite

	referee Referee
	rng     *rand.Rand
	cues    CuePlayer
}

// NewBall creates a ball and serves it towards the referee's current service side
func NewBall(proj *Projection, referee Referee, rng *rand.Rand, cues CuePlayer) *Ball {
	if cues == nil {
		cues = silentCues{}
	}
	b := &Ball{
		Sprite:  newSprite(proj, constants.BallSide, constants.BallSide, core.RGBWhite),
		referee: referee,
		rng:     rng,
		cues:    cues,
	}
	b.Install()
	b.Reset()
	return b
}

// Reset relaunches from the center at base speed
// Service 0 heads right (angle 0), service 1 heads left (angle pi), plus a random offset
// symmetric in sign and bounded by the field's diagonal half-angle
func (b *Ball) Reset() {
	sign := -1.0
	if b.rng.Float64() > 0.5 {
		sign = 1.0
	}
	angle := float64(b.referee.ServiceIndex())*math.Pi + sign*b.rng.Float64()*maxServeOffset

	b.Place(0, 0, constants.BallSpeed*math.Cos(angle), constants.BallSpeed*math.Sin(angle))
}

// Predict integrates, reports scoring, then bounces off the walls
func (b *Ball) Predict(dt float64) {
	b.Sprite.Predict(dt)

	if b.X < -constants.OrthoWidth/2 {
		b.referee.Scored(1)
	} else if b.X > constants.OrthoWidth/2 {
		b.referee.Scored(0)
	}

	// Clamp first so overshoot does not compound across bounces
	top := constants.FieldHeight / 2
	if b.Y > top {
		b.Y = top
		b.VY = -b.VY
		b.cues.PlayCue(core.SoundBounce)
	} else if b.Y < -top {
		b.Y = -top
		b.VY = -b.VY
		b.cues.PlayCue(core.SoundBounce)
	}
}

// SpeedUp accelerates after a paddle hit, more for hits near the paddle center
// No further gain once |vX| reaches the cap, and a gain never carries |vX| past it
func (b *Ball) SpeedUp(bat *Paddle) {
	ceiling := constants.BallSpeedCap * constants.BallSpeed
	vx := math.Abs(b.VX)
	if vx >= ceiling {
		return
	}

	offset := 1 - math.Abs(b.Y-bat.Y)/(bat.Height/2)
	factor := 1 + constants.BallSpeedUpGain*offset*offset
	if vx*factor >= ceiling {
		b.VY *= ceiling / vx
		b.VX = math.Copysign(ceiling, b.VX)
		return
	}

	b.VX *= factor
	b.VY *= factor
}

// Speed returns the velocity magnitude
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
