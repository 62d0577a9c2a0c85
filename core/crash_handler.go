package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashFini func()
)

// SetCrashTerminal registers the terminal teardown run before a crash report
func SetCrashTerminal(fini func()) {
	crashMu.Lock()
	crashFini = fini
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: it restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini := crashFini
	crashFini = nil
	crashMu.Unlock()
	if fini != nil {
		fini()
	}

	writeCrash(os.Stderr, r, debug.Stack())
	os.Exit(1)
}

func writeCrash(w io.Writer, r any, stack []byte) {
	// \r\n for raw mode compatibility in case teardown failed
	fmt.Fprintf(w, "\r\n\x1b[31mVIPER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}

// Go starts fn on a goroutine whose panic goes through HandleCrash
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
