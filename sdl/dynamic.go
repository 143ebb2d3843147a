//go:build unix || windows

package sdl

import (
	"github.com/ebitengine/purego"
)

func init() {
	var err error

	libsdl, err = loadLibrary()
	if err != nil {
		loadErr = err
		return
	}

	purego.RegisterLibFunc(&_sdlInit, libsdl, "SDL_Init")
	purego.RegisterLibFunc(&_sdlQuit, libsdl, "SDL_Quit")
	purego.RegisterLibFunc(&_sdlGetVersion, libsdl, "SDL_GetVersion")
	purego.RegisterLibFunc(&_sdlGetError, libsdl, "SDL_GetError")
	purego.RegisterLibFunc(&_sdlClearError, libsdl, "SDL_ClearError")
	purego.RegisterLibFunc(&_sdlMalloc, libsdl, "SDL_malloc")
	purego.RegisterLibFunc(&_sdlFree, libsdl, "SDL_free")
	purego.RegisterLibFunc(&_sdlFreeSurface, libsdl, "SDL_FreeSurface")
	purego.RegisterLibFunc(&_sdlConvertSurfaceFormat, libsdl, "SDL_ConvertSurfaceFormat")
	purego.RegisterLibFunc(&_sdlLockSurface, libsdl, "SDL_LockSurface")
	purego.RegisterLibFunc(&_sdlUnlockSurface, libsdl, "SDL_UnlockSurface")
	purego.RegisterLibFunc(&_sdlRWFromFile, libsdl, "SDL_RWFromFile")
	purego.RegisterLibFunc(&_sdlRWFromMem, libsdl, "SDL_RWFromMem")
	purego.RegisterLibFunc(&_sdlRWFromConstMem, libsdl, "SDL_RWFromConstMem")
	purego.RegisterLibFunc(&_sdlRWseek, libsdl, "SDL_RWseek")
	purego.RegisterLibFunc(&_sdlRWtell, libsdl, "SDL_RWtell")
	purego.RegisterLibFunc(&_sdlRWclose, libsdl, "SDL_RWclose")
	purego.RegisterLibFunc(&_sdlCreateWindow, libsdl, "SDL_CreateWindow")
	purego.RegisterLibFunc(&_sdlDestroyWindow, libsdl, "SDL_DestroyWindow")
	purego.RegisterLibFunc(&_sdlCreateRenderer, libsdl, "SDL_CreateRenderer")
	purego.RegisterLibFunc(&_sdlDestroyRenderer, libsdl, "SDL_DestroyRenderer")
	purego.RegisterLibFunc(&_sdlSetRenderDrawColor, libsdl, "SDL_SetRenderDrawColor")
	purego.RegisterLibFunc(&_sdlRenderClear, libsdl, "SDL_RenderClear")
	purego.RegisterLibFunc(&_sdlRenderCopy, libsdl, "SDL_RenderCopy")
	purego.RegisterLibFunc(&_sdlRenderPresent, libsdl, "SDL_RenderPresent")
	purego.RegisterLibFunc(&_sdlDestroyTexture, libsdl, "SDL_DestroyTexture")
	purego.RegisterLibFunc(&_sdlPollEvent, libsdl, "SDL_PollEvent")

	loadErr = nil
}

// Handle returns the handle of the loaded SDL2 library, or 0.
func Handle() uintptr {
	return libsdl
}
