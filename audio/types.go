package audio

import (
	"errors"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// AudioConfig holds the settings used to synthesize and play cues
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns audio on at half volume with per-cue balance
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundBounce: 0.4,
			core.SoundHit:    0.6,
			core.SoundScore:  0.7,
			core.SoundTarget: 0.8,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled     = errors.New("audio disabled by configuration")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
