package sdlimage

import (
	"errors"
	"unsafe"

	"github.com/gen2brain/sdlimage/sdl"
)

var (
	libimg  uintptr
	loadErr error = errors.New("sdlimage: library not loaded")
)

var (
	_imgInit             func(int32) int32
	_imgQuit             func()
	_imgLinkedVersion    func() *sdl.Version
	_imgLoad             func(string) unsafe.Pointer
	_imgLoadRW           func(unsafe.Pointer, int32) unsafe.Pointer
	_imgLoadTexture      func(unsafe.Pointer, string) unsafe.Pointer
	_imgLoadTextureRW    func(unsafe.Pointer, unsafe.Pointer, int32) unsafe.Pointer
	_imgReadXPMFromArray func(unsafe.Pointer) unsafe.Pointer
	_imgSavePNG          func(unsafe.Pointer, string) int32
	_imgSavePNGRW        func(unsafe.Pointer, unsafe.Pointer, int32) int32
)
