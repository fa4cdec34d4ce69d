package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHandler atomic.Pointer[func(r any)]

// SetCrashHandler installs the function run on a recovered panic
// The front end sets it once the terminal is in raw mode so the screen is restored first
func SetCrashHandler(h func(r any)) {
	if h == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&h)
}

// HandleCrash runs the installed handler, or prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if h := crashHandler.Load(); h != nil {
		(*h)(r)
		return
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
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
