package sdl

import (
	"runtime"
	"sync"
)

// Error is a failed native call together with the text SDL left in its error
// slot at the moment of failure. Msg is empty when the library set no text.
type Error struct {
	Op  string
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Op + ": unknown error"
	}

	return e.Op + ": " + e.Msg
}

var mu sync.Mutex

// Call runs fn with exclusive access to the native libraries. The goroutine
// stays on one OS thread while fn runs, since SDL keeps its error slot per
// thread. When fn reports failure the error text is read before the lock is
// released and returned as *Error.
//
// fn must not call exported functions of this package or of packages built on
// it, other than Malloc and Free.
func Call(op string, fn func() bool) error {
	if loadErr != nil {
		return loadErr
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	mu.Lock()
	defer mu.Unlock()

	_sdlClearError()
	if fn() {
		return nil
	}

	return &Error{Op: op, Msg: _sdlGetError()}
}
