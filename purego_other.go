//go:build !unix && !windows

package sdlimage

import (
	"fmt"
	"runtime"
)

func init() {
	loadErr = fmt.Errorf("sdlimage: unsupported os: %s", runtime.GOOS)
}
