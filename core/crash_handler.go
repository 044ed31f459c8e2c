package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is finalized before the stack trace is printed so the terminal is usable again
var crashScreen atomic.Pointer[tcell.Screen]

// SetCrashScreen registers the screen restored by HandleCrash
func SetCrashScreen(s tcell.Screen) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// RestoreTerminal finalizes the registered screen, at most once
func RestoreTerminal() {
	if p := crashScreen.Swap(nil); p != nil {
		(*p).Fini()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	RestoreTerminal()

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
