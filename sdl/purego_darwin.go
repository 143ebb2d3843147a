//go:build darwin

package sdl

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

const (
	libname = "libSDL2.dylib"
)

func loadLibrary() (handle uintptr, err error) {
	for _, path := range Candidates(
		os.Getenv("SDL2_LIBRARY"),
		libname,
		"/opt/homebrew/lib/libSDL2.dylib",
		"/usr/local/lib/libSDL2.dylib",
	) {
		handle, err = purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			Logger().Debug("loaded library", zap.String("path", path))
			return handle, nil
		}
	}

	return 0, fmt.Errorf("cannot load library: %w", err)
}
