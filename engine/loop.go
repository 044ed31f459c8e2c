package engine

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/oddball-pong/status"
)

var (
	ErrInvalidInterval = errors.New("loop interval must be positive")
	ErrNoUpdate        = errors.New("loop has no update callback")
)

// LoopConfig wires the two periodic tasks and the input stream into a Loop
type LoopConfig struct {
	UpdateInterval time.Duration
	DrawInterval   time.Duration

	// Clock stamps each callback; defaults to the system clock
	Clock Clock

	// Events is the terminal event stream; nil runs without input
	Events <-chan tcell.Event

	OnUpdate func(now time.Time)
	OnDraw   func(now time.Time)

	// OnEvent returns false to stop the loop
	OnEvent func(ev tcell.Event, now time.Time) bool

	Status *status.Registry
}

// Loop runs update, draw and event handling on a single goroutine
// Update and draw are unsynchronized periodic tasks; draw only observes state committed by a
// completed update because both run serially inside one select
type Loop struct {
	cfg LoopConfig

	statTicks    *atomic.Int64
	statDraws    *atomic.Int64
	statEvents   *atomic.Int64
	statOverruns *atomic.Int64
	statUpdateMs *status.AtomicFloat
}

// NewLoop validates cfg and fills defaults
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if cfg.UpdateInterval <= 0 || cfg.DrawInterval <= 0 {
		return nil, ErrInvalidInterval
	}
	if cfg.OnUpdate == nil {
		return nil, ErrNoUpdate
	}
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}
	if cfg.OnDraw == nil {
		cfg.OnDraw = func(time.Time) {}
	}
	if cfg.OnEvent == nil {
		cfg.OnEvent = func(tcell.Event, time.Time) bool { return true }
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	return &Loop{
		cfg:          cfg,
		statTicks:    cfg.Status.Ints.Get("engine.ticks"),
		statDraws:    cfg.Status.Ints.Get("engine.draws"),
		statEvents:   cfg.Status.Ints.Get("engine.events"),
		statOverruns: cfg.Status.Ints.Get("engine.overruns"),
		statUpdateMs: cfg.Status.Floats.Get("engine.update_ms"),
	}, nil
}

// Run blocks until ctx is cancelled, OnEvent asks to stop, or the event stream closes
// A stop request or a closed stream returns nil; cancellation returns ctx.Err()
func (l *Loop) Run(ctx context.Context) error {
	updateTicker := time.NewTicker(l.cfg.UpdateInterval)
	defer updateTicker.Stop()
	drawTicker := time.NewTicker(l.cfg.DrawInterval)
	defer drawTicker.Stop()

	events := l.cfg.Events
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			l.statEvents.Add(1)
			if !l.cfg.OnEvent(ev, l.cfg.Clock.Now()) {
				return nil
			}

		case <-updateTicker.C:
			l.update()

		case <-drawTicker.C:
			l.cfg.OnDraw(l.cfg.Clock.Now())
			l.statDraws.Add(1)
		}
	}
}

// update runs one simulation tick, records its duration and counts overruns
// Tickers drop ticks for slow receivers, so an overrun delays rather than queues
func (l *Loop) update() {
	start := l.cfg.Clock.Now()
	l.cfg.OnUpdate(start)
	l.statTicks.Add(1)

	elapsed := l.cfg.Clock.Now().Sub(start)
	l.statUpdateMs.Set(float64(elapsed.Microseconds()) / 1000)
	if elapsed > l.cfg.UpdateInterval {
		if l.statOverruns.Add(1)%100 == 1 {
			log.Printf("engine: update took %v, interval %v", elapsed, l.cfg.UpdateInterval)
		}
	}
}
