package sdl

import (
	"unsafe"
)

// Malloc allocates n bytes with SDL_malloc. It does not take the call gate
// and may be used inside a Call.
func Malloc(n int) unsafe.Pointer {
	if loadErr != nil || n <= 0 {
		return nil
	}

	return _sdlMalloc(uintptr(n))
}

// Free releases memory obtained from Malloc. It does not take the call gate.
func Free(p unsafe.Pointer) {
	if loadErr != nil || p == nil {
		return
	}

	_sdlFree(p)
}

// CString copies s into SDL memory with a terminating NUL.
func CString(s string) unsafe.Pointer {
	p := Malloc(len(s) + 1)
	if p == nil {
		return nil
	}

	b := unsafe.Slice((*byte)(p), len(s)+1)
	copy(b, s)
	b[len(s)] = 0

	return p
}
