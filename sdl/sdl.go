// Package sdl implements the small part of SDL2 needed around SDL2_image: the
// exclusive call gate and error slot, surfaces, RWops, windows, renderers,
// textures and event polling. The library is loaded at runtime with purego.
package sdl

import (
	"errors"
	"fmt"
)

// Subsystem flags for Init.
const (
	INIT_TIMER  uint32 = 0x00000001
	INIT_VIDEO  uint32 = 0x00000020
	INIT_EVENTS uint32 = 0x00004000
)

var (
	ErrNotLoaded = errors.New("sdl: library not loaded")
	ErrFreed     = errors.New("sdl: object already released")
	ErrDestroyed = errors.New("sdl: renderer destroyed")
)

// Version is the major, minor and patch triple reported by an SDL library.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Dynamic reports whether the SDL2 shared library was loaded.
func Dynamic() bool {
	return loadErr == nil
}

// LoadError returns the error recorded while loading the shared library, if any.
func LoadError() error {
	return loadErr
}

// Init initializes the requested SDL subsystems.
func Init(flags uint32) error {
	err := Call("init", func() bool {
		return _sdlInit(flags) == 0
	})
	if err == nil {
		Logger().Debug("sdl initialized")
	}

	return err
}

// Quit shuts down all SDL subsystems.
func Quit() {
	_ = Call("quit", func() bool {
		_sdlQuit()
		return true
	})
}

// GetVersion returns the version of the linked SDL2 library.
func GetVersion() (Version, error) {
	var v Version
	err := Call("get version", func() bool {
		_sdlGetVersion(&v)
		return true
	})

	return v, err
}
