package sdl

import (
	"unsafe"
)

var (
	libsdl  uintptr
	loadErr error = ErrNotLoaded
)

var (
	_sdlInit                 func(uint32) int32
	_sdlQuit                 func()
	_sdlGetVersion           func(*Version)
	_sdlGetError             func() string
	_sdlClearError           func()
	_sdlMalloc               func(uintptr) unsafe.Pointer
	_sdlFree                 func(unsafe.Pointer)
	_sdlFreeSurface          func(*surface)
	_sdlConvertSurfaceFormat func(*surface, uint32, uint32) *surface
	_sdlLockSurface          func(*surface) int32
	_sdlUnlockSurface        func(*surface)
	_sdlRWFromFile           func(string, string) *rwops
	_sdlRWFromMem            func(unsafe.Pointer, int32) *rwops
	_sdlRWFromConstMem       func(unsafe.Pointer, int32) *rwops
	_sdlRWseek               func(*rwops, int64, int32) int64
	_sdlRWtell               func(*rwops) int64
	_sdlRWclose              func(*rwops) int32
	_sdlCreateWindow         func(string, int32, int32, int32, int32, uint32) *window
	_sdlDestroyWindow        func(*window)
	_sdlCreateRenderer       func(*window, int32, uint32) *renderer
	_sdlDestroyRenderer      func(*renderer)
	_sdlSetRenderDrawColor   func(*renderer, uint8, uint8, uint8, uint8) int32
	_sdlRenderClear          func(*renderer) int32
	_sdlRenderCopy           func(*renderer, *texture, *Rect, *Rect) int32
	_sdlRenderPresent        func(*renderer)
	_sdlDestroyTexture       func(*texture)
	_sdlPollEvent            func(*rawEvent) int32
)

// Layout of SDL_Surface in SDL 2.0.
type surface struct {
	Flags       uint32
	Format      unsafe.Pointer
	W           int32
	H           int32
	Pitch       int32
	Pixels      unsafe.Pointer
	Userdata    unsafe.Pointer
	Locked      int32
	ListBlitmap unsafe.Pointer
	ClipRect    Rect
	Map         unsafe.Pointer
	Refcount    int32
}

type rwops struct{}
type window struct{}
type renderer struct{}
type texture struct{}

// SDL_Event is a 56 byte union.
type rawEvent [7]uint64

const (
	pixelFormatABGR8888 = 0x16762004
	pixelFormatRGBA8888 = 0x16462004
)

// pixelFormatRGBA32 lays pixels out as R, G, B, A bytes in memory.
var pixelFormatRGBA32 = func() uint32 {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return pixelFormatABGR8888
	}

	return pixelFormatRGBA8888
}()
