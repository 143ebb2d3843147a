package sdl

import (
	"unsafe"
)

type EventType uint32

const (
	QUIT    EventType = 0x100
	KEYDOWN EventType = 0x300
	KEYUP   EventType = 0x301
)

type Keycode int32

const (
	K_ESCAPE Keycode = 27
	K_q      Keycode = 'q'
)

// Event is the subset of SDL_Event the package decodes.
type Event struct {
	Type EventType
	// Key is set for KEYDOWN and KEYUP.
	Key Keycode
}

// PollEvent returns the next pending event, if any.
func PollEvent() (Event, bool) {
	var raw rawEvent
	var ev Event

	var n int32
	err := Call("poll event", func() bool {
		n = _sdlPollEvent(&raw)
		return true
	})
	if err != nil || n != 1 {
		return ev, false
	}

	b := unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unsafe.Sizeof(raw))
	ev.Type = EventType(*(*uint32)(unsafe.Pointer(&b[0])))

	switch ev.Type {
	case KEYDOWN, KEYUP:
		// SDL_KeyboardEvent: type, timestamp, windowID, state/repeat/padding, keysym.scancode, keysym.sym
		ev.Key = Keycode(*(*int32)(unsafe.Pointer(&b[20])))
	}

	return ev, true
}
