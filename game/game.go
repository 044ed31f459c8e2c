// Package game holds the Pong simulation and the oddball stimulus cycle.
// All methods run on the loop goroutine; the only cross-goroutine value is the input state.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/input"
	"github.com/lixenwraith/oddball-pong/status"
	"github.com/lixenwraith/oddball-pong/trial"
)

// Options configures a Game; zero values select defaults
type Options struct {
	SetSize    int  // Number of stimulus squares
	Stimulus   bool // Run the stimulus cycle
	Background core.RGB
	Rand       *rand.Rand
	Cues       CuePlayer
	Trials     trial.Sink
	Status     *status.Registry
}

// Game owns the entity list, scoring and service state, and the stimulus cycle
type Game struct {
	keys *input.State
	key  input.KeyCode // Sampled once per Update

	proj     *Projection
	entities []Entity
	paddles  [2]*Paddle
	ball     *Ball
	board    *Scoreboard
	squares  []*Square

	paused       bool
	serviceIndex int
	time         time.Time
	deltaT       float64 // Seconds since previous Update

	background core.RGB
	stimulus   bool
	rng        *rand.Rand
	cues       CuePlayer
	trials     trial.Sink
	status     *status.Registry

	exp experiment
}

// New creates a paused game on a canvas of canvasW by canvasH cells
// start anchors both the tick clock and the first stimulus cycle
func New(keys *input.State, canvasW, canvasH int, start time.Time, opts Options) *Game {
	g := &Game{
		keys:       keys,
		proj:       NewProjection(canvasW, canvasH),
		paused:     true,
		time:       start,
		background: opts.Background,
		stimulus:   opts.Stimulus,
		rng:        opts.Rand,
		cues:       opts.Cues,
		trials:     opts.Trials,
		status:     opts.Status,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(start.UnixNano()))
	}
	if g.cues == nil {
		g.cues = silentCues{}
	}
	if g.status == nil {
		g.status = status.NewRegistry()
	}
	setSize := opts.SetSize
	if setSize <= 0 {
		setSize = constants.DefaultSetSize
	}

	// Serve direction must exist before the ball's first Reset
	g.serviceIndex = g.rng.Intn(2)

	g.ball = NewBall(g.proj, g, g.rng, g.cues)
	g.paddles[0] = NewPaddle(0, g.proj, g, g.ball, g.cues)
	g.paddles[1] = NewPaddle(1, g.proj, g, g.ball, g.cues)
	g.board = NewScoreboard(g.proj, core.RGBWhite)

	g.entities = []Entity{g.paddles[0], g.paddles[1], g.ball, g.board}
	if g.stimulus {
		g.squares = make([]*Square, setSize)
		for i := range g.squares {
			g.squares[i] = NewSquare(i, g.proj, g.background)
			g.entities = append(g.entities, g.squares[i])
		}
	}

	g.exp.reset(start)
	return g
}

// Update advances the game to now
func (g *Game) Update(now time.Time) {
	g.deltaT = now.Sub(g.time).Seconds()
	g.time = now
	g.key = g.keys.Current(now)
	g.status.Ints.Get("game.ticks").Add(1)

	if g.stimulus {
		g.updateSquares()
	}

	if g.paused {
		switch g.key {
		case input.KeySpace:
			g.paused = false
		case input.KeyEnter:
			g.board.Reset()
		}
		return
	}

	for _, e := range g.entities {
		e.Predict(g.deltaT)
	}
	for _, e := range g.entities {
		e.Interact()
	}
	for _, e := range g.entities {
		e.Commit()
	}
}

// Scored awards a point, hands the serve to the player who lost the rally and pauses
func (g *Game) Scored(playerIndex int) {
	g.board.Increment(playerIndex)
	g.serviceIndex = 1 - playerIndex
	g.ball.Reset()
	g.paused = true
	g.cues.PlayCue(core.SoundScore)
	g.status.Ints.Get("game.rallies").Add(1)
}

// Key returns the key sampled for the current tick
func (g *Game) Key() input.KeyCode {
	return g.key
}

func (g *Game) ServiceIndex() int {
	return g.serviceIndex
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) Scores() [2]int {
	return g.board.Scores()
}

// Install rebuilds every entity's drawable for the current projection
func (g *Game) Install() {
	for _, e := range g.entities {
		e.Install()
	}
}

// Commit syncs every entity's drawable with its simulation state
func (g *Game) Commit() {
	for _, e := range g.entities {
		e.Commit()
	}
}

// Draw clears the canvas and adds every entity's committed drawables
func (g *Game) Draw(cv Canvas) {
	cv.Clear()
	for _, e := range g.entities {
		e.Draw(cv)
	}
}

// Resize changes the canvas size, then re-installs and re-commits all entities
func (g *Game) Resize(w, h int) {
	if g.proj.Resize(w, h) {
		log.Printf("game: canvas %dx%d clamped to minimum size", w, h)
	}
	g.Install()
	g.Commit()
}

// Ball, Paddle and Squares expose entities for inspection by the render layer and tests
func (g *Game) Ball() *Ball {
	return g.ball
}

func (g *Game) Paddle(index int) *Paddle {
	return g.paddles[index]
}

func (g *Game) Squares() []*Square {
	return g.squares
}
