//go:build unix || windows

package sdlimage

import (
	"github.com/ebitengine/purego"

	"github.com/gen2brain/sdlimage/sdl"
)

func init() {
	if !sdl.Dynamic() {
		loadErr = sdl.LoadError()
		return
	}

	var err error

	libimg, err = loadLibrary()
	if err != nil {
		loadErr = err
		return
	}

	purego.RegisterLibFunc(&_imgInit, libimg, "IMG_Init")
	purego.RegisterLibFunc(&_imgQuit, libimg, "IMG_Quit")
	purego.RegisterLibFunc(&_imgLinkedVersion, libimg, "IMG_Linked_Version")
	purego.RegisterLibFunc(&_imgLoad, libimg, "IMG_Load")
	purego.RegisterLibFunc(&_imgLoadRW, libimg, "IMG_Load_RW")
	purego.RegisterLibFunc(&_imgLoadTexture, libimg, "IMG_LoadTexture")
	purego.RegisterLibFunc(&_imgLoadTextureRW, libimg, "IMG_LoadTexture_RW")
	purego.RegisterLibFunc(&_imgReadXPMFromArray, libimg, "IMG_ReadXPMFromArray")
	purego.RegisterLibFunc(&_imgSavePNG, libimg, "IMG_SavePNG")
	purego.RegisterLibFunc(&_imgSavePNGRW, libimg, "IMG_SavePNG_RW")

	for f := CUR; f < formatCount; f++ {
		e := &formats[f]
		purego.RegisterLibFunc(&e.load, libimg, "IMG_Load"+e.name+"_RW")

		// SDL2_image has no IMG_isTGA; TGA probes always report false.
		if f == TGA {
			continue
		}
		purego.RegisterLibFunc(&e.probe, libimg, "IMG_is"+e.name)
	}

	loadErr = nil
}
