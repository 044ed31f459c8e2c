package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/oddball-pong/core"
)

// EventSource is the polling side of a tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump forwards events from src to out on a crash-safe goroutine
// out is closed when src stops delivering (PollEvent returns nil after Fini)
func Pump(src EventSource, out chan<- tcell.Event) {
	core.Go(func() {
		defer close(out)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			out <- ev
		}
	})
}
