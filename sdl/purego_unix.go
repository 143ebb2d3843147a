//go:build unix && !darwin

package sdl

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

const (
	libname = "libSDL2-2.0.so.0"
)

func loadLibrary() (uintptr, error) {
	var err error

	for _, path := range Candidates(os.Getenv("SDL2_LIBRARY"), libname, "libSDL2.so") {
		var handle uintptr
		handle, err = purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			Logger().Debug("loaded library", zap.String("path", path))
			return handle, nil
		}
	}

	return 0, fmt.Errorf("cannot load library: %w", err)
}
