//go:build windows

package sdlimage

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"

	"github.com/gen2brain/sdlimage/sdl"
)

const (
	libname = "SDL2_image.dll"
)

func loadLibrary() (uintptr, error) {
	var err error

	for _, path := range sdl.Candidates(os.Getenv("SDL2_IMAGE_LIBRARY"), libname) {
		var handle windows.Handle
		handle, err = windows.LoadLibrary(path)
		if err == nil {
			return uintptr(handle), nil
		}
	}

	return 0, fmt.Errorf("cannot load library %s: %w", libname, err)
}
