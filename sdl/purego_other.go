//go:build !unix && !windows

package sdl

import (
	"fmt"
	"runtime"
)

func init() {
	loadErr = fmt.Errorf("sdl: unsupported os: %s", runtime.GOOS)
}

// Handle returns the handle of the loaded SDL2 library, or 0.
func Handle() uintptr {
	return 0
}
