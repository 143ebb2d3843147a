//go:build windows

package sdl

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

const (
	libname = "SDL2.dll"
)

func loadLibrary() (uintptr, error) {
	var err error

	for _, path := range Candidates(os.Getenv("SDL2_LIBRARY"), libname) {
		var handle windows.Handle
		handle, err = windows.LoadLibrary(path)
		if err == nil {
			return uintptr(handle), nil
		}
	}

	return 0, fmt.Errorf("cannot load library %s: %w", libname, err)
}
