package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBounceSound generates a short low blip for a wall bounce
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(330.0, constants.BounceSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[core.SoundBounce]*cfg.MasterVolume)
}

// CreateHitSound generates a brighter blip for a paddle hit
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(660.0, constants.HitSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[core.SoundHit]*cfg.MasterVolume)
}

// CreateScoreSound generates a falling two-note chime for a point
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A4
	n1 := NewOscillator(659.25, constants.ScoreSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.ScoreSoundNote1Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, rate)

	n2 := NewOscillator(440.0, constants.ScoreSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[core.SoundScore]*cfg.MasterVolume)
}

// CreateTargetSound generates a bell marking target onset
func CreateTargetSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 fundamental with an octave overtone
	fund := NewOscillator(880.0, constants.TargetSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.TargetSoundDuration, constants.TargetSoundAttack, constants.TargetSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, constants.TargetSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.TargetSoundDuration, constants.TargetSoundAttack, constants.TargetSoundOvertoneRelease, rate)

	// Take bounds the mix to the bell length
	mixed := beep.Take(rate.N(constants.TargetSoundDuration), beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	))

	return newVolume(mixed, cfg.EffectVolumes[core.SoundTarget]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown cues
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundBounce:
		return CreateBounceSound(cfg)
	case core.SoundHit:
		return CreateHitSound(cfg)
	case core.SoundScore:
		return CreateScoreSound(cfg)
	case core.SoundTarget:
		return CreateTargetSound(cfg)
	default:
		return nil
	}
}
