package game

import (
	"github.com/lixenwraith/oddball-pong/core"
	"github.com/lixenwraith/oddball-pong/input"
)

// Entity is one member of the Game's ordered entity list
// Per tick the Game calls Predict on all, then Interact on all, then Commit on all
type Entity interface {
	// Install builds the drawable for the current projection
	Install()
	// Reset restores the starting state and commits it
	Reset()
	// Predict integrates motion over dt seconds without resolving contacts
	Predict(dt float64)
	// Interact resolves bounds and contacts against every entity's predicted state
	Interact()
	// Commit syncs simulation state into the drawable
	Commit()
	// Draw adds the committed drawable to the canvas
	Draw(cv Canvas)
}

// KeySource exposes the key sampled for the current tick
type KeySource interface {
	Key() input.KeyCode
}

// Referee receives scoring and provides the service direction
type Referee interface {
	Scored(playerIndex int)
	ServiceIndex() int
}

// CuePlayer plays a sound cue; implementations must not block the tick
type CuePlayer interface {
	PlayCue(s core.SoundType)
}

type silentCues struct{}

func (silentCues) PlayCue(core.SoundType) {}
