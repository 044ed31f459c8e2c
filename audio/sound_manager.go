package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// SoundManager plays game cues through a single speaker mixer
// PlayCue only queues the cue; a worker goroutine synthesizes it and takes the speaker lock,
// so the caller's tick never waits on the audio callback. Cues are dropped until Initialize
// succeeds and whenever the queue is full.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized atomic.Bool

	cues chan core.SoundType
	stop chan struct{}
	done chan struct{}

	played  atomic.Int64
	dropped atomic.Int64
}

// NewSoundManager creates a sound manager; nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cues:  make(chan core.SoundType, constants.CueQueueSize),
	}
}

// Initialize opens the speaker and starts the cue worker; failure leaves the manager silent
// but usable
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized.Load() {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}
	if sm.cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sm.cfg.SampleRate)
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.start(func(st beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(st)
		speaker.Unlock()
	})
	return nil
}

// start launches the worker that turns queued cues into streamers and hands them to play
func (sm *SoundManager) start(play func(beep.Streamer)) {
	sm.stop = make(chan struct{})
	sm.done = make(chan struct{})
	stop, done := sm.stop, sm.done

	core.Go(func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case st := <-sm.cues:
				streamer := GetSoundEffect(st, sm.cfg)
				if streamer == nil {
					sm.dropped.Add(1)
					continue
				}
				play(streamer)
				sm.played.Add(1)
			}
		}
	})
	sm.initialized.Store(true)
}

// Cleanup stops the worker, silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized.Load() {
		return
	}
	sm.shutdown()

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// shutdown stops the worker and waits for it; cues still queued are discarded
func (sm *SoundManager) shutdown() {
	sm.initialized.Store(false)
	close(sm.stop)
	<-sm.done
}

// PlayCue queues a cue without blocking
func (sm *SoundManager) PlayCue(s core.SoundType) {
	if !sm.initialized.Load() {
		sm.dropped.Add(1)
		return
	}
	select {
	case sm.cues <- s:
	default:
		sm.dropped.Add(1)
	}
}

// Stats returns the number of cues played and dropped
func (sm *SoundManager) Stats() (played, dropped int64) {
	return sm.played.Load(), sm.dropped.Load()
}
