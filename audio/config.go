package audio

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lixenwraith/oddball-pong/core"
)

// LoadAudioConfig builds the audio configuration from resolved settings
// Per-cue volumes may be overridden with ODDBALL_SFX_VOLUMES, a JSON object keyed by cue
// name, e.g. {"bounce":0.2,"target":1.0}
func LoadAudioConfig(enabled bool, masterVolume float64, sampleRate int) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = clampUnit(masterVolume)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}

	if effectVols := os.Getenv("ODDBALL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err != nil {
			log.Printf("audio: ignoring ODDBALL_SFX_VOLUMES: %v", err)
			return cfg
		}
		for name, v := range volumes {
			if st, ok := core.ParseSoundType(name); ok {
				cfg.EffectVolumes[st] = clampUnit(v)
			}
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	return max(0, min(v, 1))
}
