package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashHooks []func()
)

// OnCrash registers a cleanup hook run before the crash report is printed
// The terminal frontend registers its screen teardown here so the report is readable
func OnCrash(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHooks = append(crashHooks, fn)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hooks := make([]func(), len(crashHooks))
	copy(hooks, crashHooks)
	crashMu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
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

// Recover is deferred by goroutines that return errors instead of using Go
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}
