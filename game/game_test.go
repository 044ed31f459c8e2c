package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/input"
	"github.com/lixenwraith/oddball-pong/trial"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const tick = 10 * time.Millisecond

// --- stubs ---

type fixedKey input.KeyCode

func (k fixedKey) Key() input.KeyCode { return input.KeyCode(k) }

type stubReferee struct {
	service int
	scored  []int
}

func (r *stubReferee) Scored(i int)      { r.scored = append(r.scored, i) }
func (r *stubReferee) ServiceIndex() int { return r.service }

type cueLog struct{ played []core.SoundType }

func (c *cueLog) PlayCue(s core.SoundType) { c.played = append(c.played, s) }

type sinkLog struct {
	records []trial.Record
	err     error
	calls   int
}

func (s *sinkLog) Record(r trial.Record) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, r)
	return nil
}

type shapeLog struct {
	clears int
	shapes []Shape
}

func (c *shapeLog) Clear()      { c.clears++; c.shapes = c.shapes[:0] }
func (c *shapeLog) Add(s Shape) { c.shapes = append(c.shapes, s) }

func newTestGame(t *testing.T, opts Options) (*Game, *input.State) {
	t.Helper()
	keys := input.NewState(time.Hour, time.Hour)
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Background == (core.RGB{}) {
		opts.Background = core.RGBGrey
	}
	return New(keys, 100, 75, t0, opts), keys
}

// press holds k for exactly one Update at now, then releases it
func press(g *Game, keys *input.State, k input.KeyCode, now time.Time) {
	keys.KeyDown(k, now)
	g.Update(now)
	keys.Release()
}

// --- projection ---

func TestProjectionLinear(t *testing.T) {
	narrow := NewProjection(100, 75)
	wide := NewProjection(200, 75)

	assert.InDelta(t, 2*narrow.ScaleX(123), wide.ScaleX(123), 1e-9, "doubling width should double ScaleX")
	assert.InDelta(t, 0, narrow.OrthoX(-constants.OrthoWidth/2), 1e-9)
	assert.InDelta(t, 100, narrow.OrthoX(constants.OrthoWidth/2), 1e-9)
	assert.InDelta(t, 10, narrow.OrthoY(constants.FieldHeight/2), 1e-9, "field top sits below the scoreboard strip")
	assert.InDelta(t, 75, narrow.OrthoY(-constants.FieldHeight/2), 1e-9, "field bottom is the canvas bottom")
}

func TestProjectionClampsDegenerateSize(t *testing.T) {
	p := NewProjection(10, 10)
	assert.True(t, p.Resize(0, -5), "zero or negative size should be clamped")

	w, h := p.Size()
	assert.Equal(t, float64(constants.MinCanvasWidth), w)
	assert.Equal(t, float64(constants.MinCanvasHeight), h)
	assert.False(t, math.IsInf(p.ScaleX(1), 0))
	assert.False(t, p.Resize(80, 24))
}

// --- paddle ---

func TestPaddleKeyMapping(t *testing.T) {
	proj := NewProjection(100, 75)
	ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)

	tests := []struct {
		index int
		key   input.KeyCode
		want  float64
	}{
		{0, input.KeyA, constants.PaddleSpeed},
		{0, input.KeyZ, -constants.PaddleSpeed},
		{0, input.KeyK, 0},
		{1, input.KeyK, constants.PaddleSpeed},
		{1, input.KeyM, -constants.PaddleSpeed},
		{1, input.KeyA, 0},
		{1, input.KeyNone, 0},
	}
	for _, tt := range tests {
		p := NewPaddle(tt.index, proj, fixedKey(tt.key), ball, nil)
		p.Predict(0.01)
		assert.Equal(t, tt.want, p.VY, "paddle %d key %s", tt.index, tt.key)
	}
}

func TestPaddleRestPositions(t *testing.T) {
	proj := NewProjection(100, 75)
	ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)

	left := NewPaddle(0, proj, fixedKey(input.KeyNone), ball, nil)
	right := NewPaddle(1, proj, fixedKey(input.KeyNone), ball, nil)

	assert.Equal(t, -440.0, left.X)
	assert.Equal(t, 440.0, right.X)
	assert.Zero(t, left.Y)
}

func TestPaddleStaysInField(t *testing.T) {
	proj := NewProjection(100, 75)
	ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)
	limit := constants.FieldHeight/2 - constants.PaddleHeight/2

	for _, k := range []input.KeyCode{input.KeyA, input.KeyZ} {
		p := NewPaddle(0, proj, fixedKey(k), ball, nil)
		for range 200 {
			p.Predict(0.01)
			p.Interact()
			p.Commit()
			require.LessOrEqual(t, p.Y, limit)
			require.GreaterOrEqual(t, p.Y, -limit)
		}
		assert.InDelta(t, limit, math.Abs(p.Y), 1e-9, "paddle should end pinned to the %s edge", k)
	}
}

func TestPaddleContactReflectsBall(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		paddleX float64
		ballX   float64
		ballVX  float64
	}{
		{"left paddle", 0, -400, -405, -300},
		{"right paddle", 1, 400, 405, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := NewProjection(100, 75)
			cues := &cueLog{}
			ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)
			p := NewPaddle(tt.index, proj, fixedKey(input.KeyNone), ball, cues)

			p.Place(tt.paddleX, 0, 0, 0)
			ball.Place(tt.ballX, 10, tt.ballVX, 0)
			p.Interact()

			assert.Equal(t, tt.paddleX, ball.X, "ball should snap to the paddle")
			require.Equal(t, math.Signbit(tt.ballVX), !math.Signbit(ball.VX), "horizontal velocity should flip")
			assert.Greater(t, math.Abs(ball.VX), math.Abs(tt.ballVX), "hit should speed the ball up")
			assert.InDelta(t, 300*(1+0.15*0.36), math.Abs(ball.VX), 1e-9)
			assert.Equal(t, []core.SoundType{core.SoundHit}, cues.played)
		})
	}
}

func TestPaddleMissOutsideSpan(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		paddleX float64
		ballX   float64
		ballY   float64
		ballVX  float64
	}{
		{"left edge of span", 0, -400, -405, 25, -300},
		{"left in front", 0, -400, -395, 0, -300},
		{"right edge of span", 1, 400, 405, -25, 300},
		{"right in front", 1, 400, 395, 0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := NewProjection(100, 75)
			ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)
			p := NewPaddle(tt.index, proj, fixedKey(input.KeyNone), ball, nil)

			p.Place(tt.paddleX, 0, 0, 0)
			ball.Place(tt.ballX, tt.ballY, tt.ballVX, 0)
			p.Interact()

			assert.Equal(t, tt.ballX, ball.X, "missed ball keeps its position")
			assert.Equal(t, tt.ballVX, ball.VX, "missed ball keeps its velocity")
		})
	}
}

// --- ball ---

func TestBallServeDirection(t *testing.T) {
	proj := NewProjection(100, 75)
	for seed := int64(0); seed < 50; seed++ {
		for svc := range 2 {
			ball := NewBall(proj, &stubReferee{service: svc}, rand.New(rand.NewSource(seed)), nil)

			assert.InDelta(t, constants.BallSpeed, ball.Speed(), 1e-9)
			assert.Zero(t, ball.X)
			assert.Zero(t, ball.Y)
			if svc == 0 {
				assert.Greater(t, ball.VX, 0.0, "service 0 serves right")
			} else {
				assert.Less(t, ball.VX, 0.0, "service 1 serves left")
			}
			assert.LessOrEqual(t, math.Abs(ball.VY/ball.VX), constants.FieldHeight/constants.OrthoWidth+1e-9)
		}
	}
}

func TestBallWallBounce(t *testing.T) {
	proj := NewProjection(100, 75)
	cues := &cueLog{}
	ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), cues)

	ball.Place(0, 320, 0, 1000)
	ball.Predict(0.01)
	assert.Equal(t, constants.FieldHeight/2, ball.Y, "overshoot should clamp to the wall")
	assert.Equal(t, -1000.0, ball.VY)

	ball.Place(0, -320, 0, -1000)
	ball.Predict(0.01)
	assert.Equal(t, -constants.FieldHeight/2, ball.Y)
	assert.Equal(t, 1000.0, ball.VY)
	assert.Equal(t, []core.SoundType{core.SoundBounce, core.SoundBounce}, cues.played)
}

func TestBallReportsScoring(t *testing.T) {
	proj := NewProjection(100, 75)
	ref := &stubReferee{}
	ball := NewBall(proj, ref, rand.New(rand.NewSource(1)), nil)

	ball.Place(-499, 0, -300, 0)
	ball.Predict(0.01)
	ball.Place(499, 0, 300, 0)
	ball.Predict(0.01)

	assert.Equal(t, []int{1, 0}, ref.scored, "left exit scores for player 1, right exit for player 0")
}

func TestBallSpeedUpCapped(t *testing.T) {
	proj := NewProjection(100, 75)
	ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)
	p := NewPaddle(0, proj, fixedKey(input.KeyNone), ball, nil)
	ceiling := constants.BallSpeedCap * constants.BallSpeed

	ball.Place(0, 0, 300, 100)
	prev := math.Abs(ball.VX)
	for range 40 {
		ball.SpeedUp(p)
		vx := math.Abs(ball.VX)
		require.GreaterOrEqual(t, vx, prev, "|vX| must not decrease")
		require.LessOrEqual(t, vx, ceiling+1e-9, "|vX| must not exceed the cap")
		prev = vx
	}
	assert.InDelta(t, ceiling, prev, 1e-9, "repeated center hits should reach the cap")

	vy := ball.VY
	ball.SpeedUp(p)
	assert.Equal(t, vy, ball.VY, "no gain once the cap is reached")
}

func TestBallSpeedUpEdgeHitNoGain(t *testing.T) {
	proj := NewProjection(100, 75)
	ball := NewBall(proj, &stubReferee{}, rand.New(rand.NewSource(1)), nil)
	p := NewPaddle(0, proj, fixedKey(input.KeyNone), ball, nil)

	ball.Place(0, constants.PaddleHeight/2, 300, 0)
	ball.SpeedUp(p)
	assert.Equal(t, 300.0, ball.VX)
}

// --- game ---

func TestGameStartsPaused(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	assert.True(t, g.Paused())
	assert.Equal(t, [2]int{}, g.Scores())
	assert.Contains(t, []int{0, 1}, g.ServiceIndex())

	x := g.Ball().X
	g.Update(t0.Add(tick))
	assert.Equal(t, x, g.Ball().X, "paused game should not move the ball")
}

func TestGameSpaceStartsEnterResets(t *testing.T) {
	g, keys := newTestGame(t, Options{})

	g.Scored(0)
	g.Scored(1)
	require.Equal(t, [2]int{1, 1}, g.Scores())

	press(g, keys, input.KeyEnter, t0.Add(tick))
	assert.Equal(t, [2]int{}, g.Scores(), "enter should reset the score while paused")
	assert.True(t, g.Paused(), "enter should not start the game")

	press(g, keys, input.KeySpace, t0.Add(2*tick))
	assert.False(t, g.Paused(), "space should start the game")

	g.Scored(0)
	press(g, keys, input.KeyEnter, t0.Add(3*tick))
	press(g, keys, input.KeySpace, t0.Add(4*tick))
	press(g, keys, input.KeyEnter, t0.Add(5*tick))
	assert.Equal(t, [2]int{}, g.Scores())
}

func TestGameScoring(t *testing.T) {
	cues := &cueLog{}
	g, keys := newTestGame(t, Options{Cues: cues})
	press(g, keys, input.KeySpace, t0.Add(tick))
	require.False(t, g.Paused())

	g.Ball().Place(501, 0, 300, 0)
	g.Update(t0.Add(2 * tick))

	assert.Equal(t, [2]int{1, 0}, g.Scores())
	assert.Equal(t, 1, g.ServiceIndex(), "the player who conceded serves next")
	assert.True(t, g.Paused())
	assert.InDelta(t, constants.BallSpeed, g.Ball().Speed(), 1e-9)
	assert.Less(t, g.Ball().VX, 0.0)
	assert.Zero(t, g.Ball().X)
	assert.Contains(t, cues.played, core.SoundScore)
	assert.Equal(t, int64(1), g.status.Ints.Get("game.rallies").Load())
}

func TestGameRallyKeepsSpeedMonotonic(t *testing.T) {
	g, keys := newTestGame(t, Options{})
	press(g, keys, input.KeySpace, t0.Add(tick))

	now := t0.Add(tick)
	prev := math.Abs(g.Ball().VX)
	for range 2000 {
		now = now.Add(tick)
		g.Update(now)
		if g.Paused() {
			break
		}
		vx := math.Abs(g.Ball().VX)
		require.GreaterOrEqual(t, vx, prev-1e-9)
		require.LessOrEqual(t, vx, constants.BallSpeedCap*constants.BallSpeed+1e-9)
		prev = vx
	}
}

func TestCommitIdempotent(t *testing.T) {
	g, _ := newTestGame(t, Options{Stimulus: true})
	g.Update(t0.Add(500 * time.Millisecond))

	g.Commit()
	first := &shapeLog{}
	g.Draw(first)
	want := append([]Shape(nil), first.shapes...)

	g.Commit()
	second := &shapeLog{}
	g.Draw(second)
	assert.Equal(t, want, second.shapes)
}

func TestDrawAddsEveryEntity(t *testing.T) {
	g, _ := newTestGame(t, Options{Stimulus: true, SetSize: 4})
	cv := &shapeLog{}
	cv.shapes = append(cv.shapes, Text{Content: "stale"})

	g.Draw(cv)
	assert.Equal(t, 1, cv.clears)
	// 2 paddles, ball, scoreboard (2 names, 2 scores, hint, separator), 4 squares
	assert.Len(t, cv.shapes, 13)
}

func TestResizeReinstalls(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	g.Resize(200, 150)

	img := g.Ball().Image()
	assert.InDelta(t, 1.6, img.Width, 1e-9)
	assert.InDelta(t, 1.6, img.Height, 1e-9)
	assert.InDelta(t, 100, img.Left, 1e-9, "ball at the center maps to the canvas center")
}

// --- stimulus cycle ---

func TestStimulusTimeline(t *testing.T) {
	sink := &sinkLog{}
	g, _ := newTestGame(t, Options{Stimulus: true, Trials: sink})
	bg := core.RGBGrey

	g.Update(t0.Add(500 * time.Millisecond))
	require.True(t, g.TrialSet())
	for _, s := range g.Squares() {
		assert.NotEqual(t, bg, s.Fill(), "square %d should be colored during setup", s.Index)
	}
	target := g.TargetColor()
	assert.Equal(t, g.Squares()[0].Fill(), target)

	g.Update(t0.Add(1100 * time.Millisecond))
	for _, s := range g.Squares() {
		assert.Equal(t, bg, s.Fill(), "square %d should be blank", s.Index)
	}

	g.Update(t0.Add(1500 * time.Millisecond))
	for _, s := range g.Squares() {
		if s.Index == 0 {
			assert.Equal(t, target, s.Fill())
		} else {
			assert.Equal(t, bg, s.Fill())
		}
	}

	g.Update(t0.Add(2100 * time.Millisecond))
	assert.Equal(t, bg, g.Squares()[0].Fill())

	g.Update(t0.Add(2600 * time.Millisecond))
	assert.False(t, g.TrialSet(), "cycle should wrap after 2500ms")

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, 0, rec.Index)
	assert.Equal(t, t0.UnixMilli(), rec.StartedAt)
	assert.Equal(t, target.Hex(), rec.TargetColor)
	assert.Len(t, rec.Squares, constants.DefaultSetSize)
	assert.False(t, rec.Responded())
	assert.Empty(t, rec.Response)
}

func TestStimulusIgnoresPause(t *testing.T) {
	g, keys := newTestGame(t, Options{Stimulus: true})
	press(g, keys, input.KeySpace, t0.Add(500*time.Millisecond))
	require.False(t, g.Paused())
	assert.True(t, g.TrialSet())
}

func TestStimulusSquaresInsideField(t *testing.T) {
	g, _ := newTestGame(t, Options{Stimulus: true, SetSize: 50})
	g.Update(t0.Add(tick))

	half := constants.SquareSide / 2
	for _, s := range g.Squares() {
		assert.LessOrEqual(t, math.Abs(s.X), constants.OrthoWidth/2-half)
		assert.LessOrEqual(t, math.Abs(s.Y), constants.FieldHeight/2-half)
		assert.Zero(t, s.VX)
		assert.Zero(t, s.VY)
	}
}

func TestStimulusResponseCapture(t *testing.T) {
	sink := &sinkLog{}
	cues := &cueLog{}
	g, keys := newTestGame(t, Options{Stimulus: true, Trials: sink, Cues: cues})

	g.Update(t0.Add(500 * time.Millisecond))
	press(g, keys, input.KeyJ, t0.Add(1100*time.Millisecond)) // Before onset, ignored
	g.Update(t0.Add(1300 * time.Millisecond))                  // Target onset
	press(g, keys, input.KeyF, t0.Add(1500*time.Millisecond))
	press(g, keys, input.KeyJ, t0.Add(1600*time.Millisecond)) // Second response, ignored
	g.Update(t0.Add(2600 * time.Millisecond))

	require.Len(t, sink.records, 1)
	assert.Equal(t, "F", sink.records[0].Response)
	assert.Equal(t, int64(200), sink.records[0].LatencyMs)
	assert.Contains(t, cues.played, core.SoundTarget)
}

func TestStimulusFailingSinkDropped(t *testing.T) {
	sink := &sinkLog{err: errors.New("disk full")}
	g, _ := newTestGame(t, Options{Stimulus: true, Trials: sink})

	now := t0
	for range 3 {
		now = now.Add(500 * time.Millisecond)
		g.Update(now) // Setup
		now = now.Add(2100 * time.Millisecond)
		g.Update(now) // Wrap
	}
	assert.Equal(t, 1, sink.calls, "a failing sink should be called once then dropped")
	assert.Equal(t, int64(3), g.status.Ints.Get("game.trials").Load())
}
