package sdl

import (
	"image"
	"sync"
	"unsafe"
)

// Surface is an owned SDL_Surface. The pixel memory belongs to SDL and is
// released by Free.
type Surface struct {
	ptr  *surface
	once sync.Once
}

// WrapSurface takes ownership of a native SDL_Surface pointer. It returns nil
// for a nil pointer.
func WrapSurface(p unsafe.Pointer) *Surface {
	if p == nil {
		return nil
	}

	return &Surface{ptr: (*surface)(p)}
}

// Ptr returns the native SDL_Surface pointer, or nil after Free.
func (s *Surface) Ptr() unsafe.Pointer {
	if s == nil {
		return nil
	}

	return unsafe.Pointer(s.ptr)
}

func (s *Surface) Width() int {
	if s == nil || s.ptr == nil {
		return 0
	}

	return int(s.ptr.W)
}

func (s *Surface) Height() int {
	if s == nil || s.ptr == nil {
		return 0
	}

	return int(s.ptr.H)
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width(), s.Height())
}

// Free releases the surface. Calling it more than once is a no-op.
func (s *Surface) Free() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		p := s.ptr
		s.ptr = nil
		if p == nil {
			return
		}

		_ = Call("free surface", func() bool {
			_sdlFreeSurface(p)
			return true
		})
	})
}

// Image copies the surface pixels into a new non-premultiplied RGBA image.
func (s *Surface) Image() (*image.NRGBA, error) {
	if s == nil || s.ptr == nil {
		return nil, ErrFreed
	}

	var img *image.NRGBA

	err := Call("convert surface", func() bool {
		conv := _sdlConvertSurfaceFormat(s.ptr, pixelFormatRGBA32, 0)
		if conv == nil {
			return false
		}

		if _sdlLockSurface(conv) != 0 {
			_sdlFreeSurface(conv)
			return false
		}

		w, h, pitch := int(conv.W), int(conv.H), int(conv.Pitch)
		img = image.NewNRGBA(image.Rect(0, 0, w, h))

		if h > 0 && w > 0 {
			src := unsafe.Slice((*byte)(conv.Pixels), pitch*h)
			for y := 0; y < h; y++ {
				copy(img.Pix[y*img.Stride:y*img.Stride+w*4], src[y*pitch:y*pitch+w*4])
			}
		}

		_sdlUnlockSurface(conv)
		_sdlFreeSurface(conv)

		return true
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}
