package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// crashCleanup restores the terminal before crash output is printed.
// Set once at startup, before any goroutine can panic.
var crashCleanup func()

// SetCrashCleanup registers the terminal restore hook
func SetCrashCleanup(fn func()) {
	crashCleanup = fn
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashCleanup != nil {
		crashCleanup()
	}

	// Print error and stack trace to stderr so it survives the screen teardown
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
