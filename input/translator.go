package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Action tells the main loop what an event requires beyond key state
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
)

// Translator maps terminal events onto the key state and the button bar
type Translator struct {
	state *State
	bar   *ButtonBar
}

// NewTranslator wires a key state to a button bar
func NewTranslator(state *State, bar *ButtonBar) *Translator {
	return &Translator{state: state, bar: bar}
}

// HandleEvent applies one terminal event
func (t *Translator) HandleEvent(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev, now)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (t *Translator) handleKey(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		t.state.KeyDown(KeyEnter, now)
	case tcell.KeyRune:
		t.state.KeyDown(FromRune(ev.Rune()), now)
	default:
		// Unbound keys still replace the current key, same as a browser keydown
		t.state.KeyDown(KeyOther, now)
	}
	return ActionNone
}

func (t *Translator) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	if buttons&tcell.Button1 != 0 {
		code, ok := t.bar.HitTest(x, y)
		if !ok || code == t.bar.pressed {
			return
		}
		t.bar.pressed = code
		t.state.ButtonDown(code)
		return
	}

	if buttons == tcell.ButtonNone && t.bar.pressed != KeyNone {
		t.bar.pressed = KeyNone
		t.state.Release()
	}
}
