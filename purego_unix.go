//go:build unix && !darwin

package sdlimage

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/gen2brain/sdlimage/sdl"
)

const (
	libname = "libSDL2_image-2.0.so.0"
)

func loadLibrary() (uintptr, error) {
	var err error

	for _, path := range sdl.Candidates(os.Getenv("SDL2_IMAGE_LIBRARY"), libname, "libSDL2_image.so") {
		var handle uintptr
		handle, err = purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			Logger().Debug("loaded library", zap.String("path", path))
			return handle, nil
		}
	}

	return 0, fmt.Errorf("cannot load library: %w", err)
}
