package audio

import (
	"testing"

	"github.com/lixenwraith/oddball-pong/core"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		vol, ok := cfg.EffectVolumes[st]
		if !ok {
			t.Errorf("Missing effect volume for %s", st)
			continue
		}
		if vol <= 0 || vol > 1 {
			t.Errorf("Effect volume for %s out of range: %f", st, vol)
		}
	}
}

func TestLoadAudioConfigSettings(t *testing.T) {
	t.Setenv("ODDBALL_SFX_VOLUMES", "")

	cfg := LoadAudioConfig(false, 1.5, 48000)
	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}

	cfg = LoadAudioConfig(true, -1, 0)
	if cfg.MasterVolume != 0 {
		t.Errorf("Expected master volume clamped to 0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate for 0, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("ODDBALL_SFX_VOLUMES", `{"bounce":0.1,"target":2,"unknown":0.5}`)

	cfg := LoadAudioConfig(true, 0.5, 44100)
	if v := cfg.EffectVolumes[core.SoundBounce]; v != 0.1 {
		t.Errorf("Expected bounce volume 0.1, got %f", v)
	}
	if v := cfg.EffectVolumes[core.SoundTarget]; v != 1 {
		t.Errorf("Expected target volume clamped to 1, got %f", v)
	}
	if v := cfg.EffectVolumes[core.SoundHit]; v != DefaultAudioConfig().EffectVolumes[core.SoundHit] {
		t.Errorf("Expected hit volume unchanged, got %f", v)
	}
}

func TestLoadAudioConfigBadJSON(t *testing.T) {
	t.Setenv("ODDBALL_SFX_VOLUMES", "{not json")

	cfg := LoadAudioConfig(true, 0.5, 44100)
	if cfg.EffectVolumes[core.SoundScore] != DefaultAudioConfig().EffectVolumes[core.SoundScore] {
		t.Error("Malformed JSON should leave defaults in place")
	}
}
