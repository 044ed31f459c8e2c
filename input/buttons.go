package input

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Button is one virtual key on the button bar, positioned in terminal cells
type Button struct {
	Key   KeyCode
	Label string
	X, Y  int
	Width int
}

// Contains reports whether the cell (x, y) lies on the button
func (b Button) Contains(x, y int) bool {
	return y == b.Y && x >= b.X && x < b.X+b.Width
}

var defaultButtons = []KeyCode{KeyA, KeyZ, KeyK, KeyM, KeySpace, KeyEnter, KeyF, KeyJ}

const buttonGap = 1

// ButtonBar lays out the virtual keys in a single centered row and tracks the pressed one
type ButtonBar struct {
	buttons []Button
	pressed KeyCode
}

// NewButtonBar creates the bar with the default key set
func NewButtonBar() *ButtonBar {
	b := &ButtonBar{buttons: make([]Button, len(defaultButtons))}
	for i, k := range defaultButtons {
		label := fmt.Sprintf("[%s]", k)
		b.buttons[i] = Button{Key: k, Label: label, Width: runewidth.StringWidth(label)}
	}
	return b
}

// Width returns the natural width of the row including gaps
func (b *ButtonBar) Width() int {
	w := 0
	for i, btn := range b.buttons {
		if i > 0 {
			w += buttonGap
		}
		w += btn.Width
	}
	return w
}

// Layout centers the row inside [x, x+width) on row y; returns false if it does not fit,
// in which case buttons past the right edge are left unreachable
func (b *ButtonBar) Layout(x, y, width int) bool {
	natural := b.Width()
	left := x + (width-natural)/2
	if left < x {
		left = x
	}
	cx := left
	for i := range b.buttons {
		b.buttons[i].X = cx
		b.buttons[i].Y = y
		cx += b.buttons[i].Width + buttonGap
	}
	return natural <= width
}

// HitTest returns the key under the cell (x, y)
func (b *ButtonBar) HitTest(x, y int) (KeyCode, bool) {
	for _, btn := range b.buttons {
		if btn.Contains(x, y) {
			return btn.Key, true
		}
	}
	return KeyNone, false
}

// Buttons returns the laid-out buttons
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Pressed returns the button currently held down, KeyNone if none
func (b *ButtonBar) Pressed() KeyCode {
	return b.pressed
}
