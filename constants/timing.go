package constants

import "time"

// Loop timing defaults, overridable through config
const (
	// UpdateInterval is the simulation tick period
	UpdateInterval = 10 * time.Millisecond

	// DrawInterval is the render tick period
	DrawInterval = 20 * time.Millisecond

	// KeyRepeatDelay is how long a first key press is held; it spans the terminal's wait
	// before auto-repeat starts
	KeyRepeatDelay = 600 * time.Millisecond

	// KeyHold is how long an auto-repeated key is held without a further repeat event
	KeyHold = 150 * time.Millisecond
)

// Stimulus cycle phase boundaries, in milliseconds since cycle start
const (
	StimulusSetupEndMs  = 1000
	StimulusBlankEndMs  = 1250
	StimulusTargetEndMs = 2000
	StimulusCycleMs     = 2500
)

// EventQueueSize is the capacity of the terminal event channel
const EventQueueSize = 256
