package constants

import "time"

// Audio defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Wall bounce blip
const (
	BounceSoundDuration = 40 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 20 * time.Millisecond
)

// Paddle hit
const (
	HitSoundDuration = 70 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
)

// Score chime, two notes
const (
	ScoreSoundNote1Duration = 80 * time.Millisecond
	ScoreSoundNote2Duration = 280 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 200 * time.Millisecond
)

// Target onset bell
const (
	TargetSoundDuration           = 400 * time.Millisecond
	TargetSoundAttack             = 5 * time.Millisecond
	TargetSoundFundamentalRelease = 350 * time.Millisecond
	TargetSoundOvertoneRelease    = 150 * time.Millisecond
)

// CueQueueSize bounds cues waiting for the audio worker; further cues are dropped
const CueQueueSize = 16
