package sdlimage

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gen2brain/sdlimage/sdl"
)

// Context represents an initialized SDL2_image. Loading and saving go through
// it. Close tears the library down; a closed Context rejects every operation
// with ErrClosed. Only Finish creates a usable Context: the zero value is
// closed, and copies share the state of the original.
type Context struct {
	noCopy noCopy

	s *session
}

// session is the state of one successful initialization.
type session struct {
	requested InitFlag
	granted   InitFlag

	once   sync.Once
	closed atomic.Bool
}

// noCopy lets go vet report copies of a Context.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Requested returns the codecs asked for at initialization.
func (c *Context) Requested() InitFlag {
	if c == nil || c.s == nil {
		return 0
	}

	return c.s.requested
}

// Granted returns the codecs the library reported as initialized. It may be
// a subset of Requested.
func (c *Context) Granted() InitFlag {
	if c == nil || c.s == nil {
		return 0
	}

	return c.s.granted
}

// Close calls IMG_Quit. Only the first call has an effect, and a Context not
// obtained from Finish has none.
func (c *Context) Close() error {
	if c == nil || c.s == nil {
		return nil
	}

	s := c.s

	var err error
	s.once.Do(func() {
		err = sdl.Call("quit", func() bool {
			s.closed.Store(true)
			_imgQuit()
			return true
		})
		live.Store(false)

		Logger().Debug("quit")
	})

	return err
}

func (c *Context) isClosed() bool {
	return c == nil || c.s == nil || c.s.closed.Load()
}

// call runs fn through the call gate unless c is closed. The closed check
// happens under the gate so it cannot race with Close.
func (c *Context) call(op string, fn func() bool) error {
	if c.isClosed() {
		return ErrClosed
	}

	var closed bool
	err := sdl.Call(op, func() bool {
		if c.s.closed.Load() {
			closed = true
			return true
		}

		return fn()
	})
	if closed {
		return ErrClosed
	}

	return err
}

// LoadTexture loads the image file at path into a texture for r.
func (c *Context) LoadTexture(r *sdl.Renderer, path string) (*sdl.Texture, error) {
	if err := checkString(path); err != nil {
		return nil, err
	}

	return c.newTexture(r, "load texture", func(rp unsafe.Pointer) unsafe.Pointer {
		return _imgLoadTexture(rp, path)
	})
}

// LoadTextureRW loads an image from rw into a texture for r. The stream is
// not closed.
func (c *Context) LoadTextureRW(r *sdl.Renderer, rw *sdl.RWops) (*sdl.Texture, error) {
	src := rw.Ptr()
	if src == nil {
		return nil, sdl.ErrFreed
	}

	return c.newTexture(r, "load texture", func(rp unsafe.Pointer) unsafe.Pointer {
		return _imgLoadTextureRW(rp, src, 0)
	})
}

func (c *Context) newTexture(r *sdl.Renderer, op string, load func(unsafe.Pointer) unsafe.Pointer) (*sdl.Texture, error) {
	if c.isClosed() {
		return nil, ErrClosed
	}

	if r == nil {
		return nil, sdl.ErrDestroyed
	}

	var closed bool
	t, err := r.NewTexture(op, func(rp unsafe.Pointer) unsafe.Pointer {
		if c.s.closed.Load() {
			closed = true
			return nil
		}

		return load(rp)
	})
	if closed {
		return nil, ErrClosed
	}

	return t, err
}

// LoadSurface loads the image file at path, detecting its format.
func (c *Context) LoadSurface(path string) (*sdl.Surface, error) {
	if err := checkString(path); err != nil {
		return nil, err
	}

	return c.loadSurface("load", func() unsafe.Pointer {
		return _imgLoad(path)
	})
}

// LoadSurfaceXPM reads an image from the lines of an XPM file, as they would
// appear in the C array.
func (c *Context) LoadSurfaceXPM(xpm []string) (*sdl.Surface, error) {
	if len(xpm) == 0 {
		return nil, fmt.Errorf("sdlimage: empty xpm")
	}

	for _, line := range xpm {
		if err := checkString(line); err != nil {
			return nil, err
		}
	}

	return c.loadSurface("read xpm", func() unsafe.Pointer {
		ptrSize := int(unsafe.Sizeof(uintptr(0)))

		arr := sdl.Malloc(len(xpm) * ptrSize)
		if arr == nil {
			return nil
		}

		lines := unsafe.Slice((*unsafe.Pointer)(arr), len(xpm))
		for i, line := range xpm {
			lines[i] = sdl.CString(line)
		}

		surf := _imgReadXPMFromArray(arr)

		for _, p := range lines {
			sdl.Free(p)
		}
		sdl.Free(arr)

		return surf
	})
}

// LoadSurfaceRW loads an image from rw. With FormatAuto the library detects
// the format; any other format calls that format's loader directly, without
// detection. The stream is not closed.
func (c *Context) LoadSurfaceRW(rw *sdl.RWops, format Format) (*sdl.Surface, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("sdlimage: invalid format %v", format)
	}

	src := rw.Ptr()
	if src == nil {
		return nil, sdl.ErrFreed
	}

	if format == FormatAuto {
		return c.loadSurface("load", func() unsafe.Pointer {
			return _imgLoadRW(src, 0)
		})
	}

	load := formats[format].load

	return c.loadSurface("load "+format.String(), func() unsafe.Pointer {
		return load(src)
	})
}

func (c *Context) loadSurface(op string, load func() unsafe.Pointer) (*sdl.Surface, error) {
	var p unsafe.Pointer
	err := c.call(op, func() bool {
		p = load()
		return p != nil
	})
	if err != nil {
		return nil, err
	}

	return sdl.WrapSurface(p), nil
}

// SaveSurface writes s to path as PNG.
func (c *Context) SaveSurface(s *sdl.Surface, path string) error {
	if err := checkString(path); err != nil {
		return err
	}

	src := s.Ptr()
	if src == nil {
		return sdl.ErrFreed
	}

	return c.call("save png", func() bool {
		return _imgSavePNG(src, path) == 0
	})
}

// SaveSurfaceRW writes s to rw as PNG. The stream is not closed.
func (c *Context) SaveSurfaceRW(s *sdl.Surface, rw *sdl.RWops) error {
	src := s.Ptr()
	if src == nil {
		return sdl.ErrFreed
	}

	dst := rw.Ptr()
	if dst == nil {
		return sdl.ErrFreed
	}

	return c.call("save png", func() bool {
		return _imgSavePNGRW(src, dst, 0) == 0
	})
}

// Is reports whether rw holds an image of the given format. The stream
// position is left unchanged.
//
// SDL2_image has no TGA detection, so Is(rw, TGA) is always false, as is
// Is(rw, FormatAuto).
func (c *Context) Is(rw *sdl.RWops, format Format) bool {
	if !format.Valid() || format == FormatAuto {
		return false
	}

	if format == TGA {
		return false
	}

	src := rw.Ptr()
	if src == nil {
		return false
	}

	probe := formats[format].probe

	var ret int32
	err := c.call("is "+format.String(), func() bool {
		ret = probe(src)
		return true
	})

	return err == nil && ret == 1
}

func checkString(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrInvalidString
	}

	return nil
}
