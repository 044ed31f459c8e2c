package game

import (
	"log"
	"time"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/input"
	"github.com/lixenwraith/oddball-pong/trial"
)

// experiment is the stimulus-cycle state, orthogonal to pause/play
type experiment struct {
	startExpTimer   time.Time
	deltaExpTimer   int64 // Milliseconds since startExpTimer
	trialSet        bool
	targetPresented bool
	targetColor     core.RGB

	targetOnset time.Time
	response    input.KeyCode
	latencyMs   int64
	placed      []trial.Square
	index       int
}

func (e *experiment) reset(now time.Time) {
	e.startExpTimer = now
	e.deltaExpTimer = 0
	e.trialSet = false
	e.targetPresented = false
	e.response = input.KeyNone
	e.latencyMs = trial.NoResponse
	e.placed = e.placed[:0]
}

// updateSquares advances the stimulus cycle by one tick
func (g *Game) updateSquares() {
	e := &g.exp
	e.deltaExpTimer = g.time.Sub(e.startExpTimer).Milliseconds()
	d := e.deltaExpTimer

	switch {
	case d <= constants.StimulusSetupEndMs:
		if !e.trialSet {
			g.setupTrial()
			e.trialSet = true
		}
	case d <= constants.StimulusBlankEndMs:
		g.blankSquares()
	case d <= constants.StimulusTargetEndMs:
		if !e.targetPresented {
			g.presentTarget()
			e.targetPresented = true
		}
	case d <= constants.StimulusCycleMs:
		g.blankSquares()
	default:
		g.finishTrial()
		e.reset(g.time)
		return
	}

	g.captureResponse()
}

// setupTrial scatters the squares over the field with fresh colors; square 0 carries the target
func (g *Game) setupTrial() {
	spanX := constants.OrthoWidth - constants.SquareSide
	spanY := constants.FieldHeight - constants.SquareSide

	for _, s := range g.squares {
		x := g.rng.Float64()*spanX - spanX/2
		y := g.rng.Float64()*spanY - spanY/2
		s.Set(x, y)
		s.SetFill(core.RandomDistinct(g.rng, g.background))
		g.exp.placed = append(g.exp.placed, trial.Square{X: x, Y: y, Color: s.Fill().Hex()})
	}
	if len(g.squares) > 0 {
		g.exp.targetColor = g.squares[0].Fill()
	}
}

func (g *Game) blankSquares() {
	for _, s := range g.squares {
		if s.Fill() != g.background {
			s.SetFill(g.background)
		}
	}
}

func (g *Game) presentTarget() {
	for _, s := range g.squares {
		if s.Index == 0 {
			s.SetFill(g.exp.targetColor)
		} else {
			s.SetFill(g.background)
		}
	}
	g.exp.targetOnset = g.time
	g.cues.PlayCue(core.SoundTarget)
}

// captureResponse keeps the first response key seen after target onset
func (g *Game) captureResponse() {
	e := &g.exp
	if !e.targetPresented || e.response != input.KeyNone || !g.key.IsResponse() {
		return
	}
	e.response = g.key
	e.latencyMs = g.time.Sub(e.targetOnset).Milliseconds()
	g.status.Ints.Get("game.responses").Add(1)
}

// finishTrial emits the trial record; a sink that fails once is dropped for the session
func (g *Game) finishTrial() {
	e := &g.exp
	if !e.trialSet {
		return
	}
	g.status.Ints.Get("game.trials").Add(1)
	rec := trial.Record{
		Index:       e.index,
		StartedAt:   e.startExpTimer.UnixMilli(),
		TargetColor: e.targetColor.Hex(),
		Squares:     append([]trial.Square(nil), e.placed...),
		LatencyMs:   e.latencyMs,
	}
	if e.response != input.KeyNone {
		rec.Response = e.response.String()
	}
	e.index++

	if g.trials == nil {
		return
	}
	if err := g.trials.Record(rec); err != nil {
		log.Printf("game: trial log disabled: %v", err)
		g.trials = nil
	}
}

// TrialSet and TargetColor expose the current cycle for the status line and tests
func (g *Game) TrialSet() bool {
	return g.exp.trialSet
}

func (g *Game) TargetColor() core.RGB {
	return g.exp.targetColor
}
