package sdl

import (
	"image/color"
	"strings"
	"sync"
	"unsafe"
)

// Window creation flags and positions.
const (
	WINDOW_SHOWN     uint32 = 0x00000004
	WINDOW_HIDDEN    uint32 = 0x00000008
	WINDOW_RESIZABLE uint32 = 0x00000020

	WINDOWPOS_UNDEFINED int32 = 0x1FFF0000
	WINDOWPOS_CENTERED  int32 = 0x2FFF0000
)

// Renderer creation flags.
const (
	RENDERER_SOFTWARE     uint32 = 0x00000001
	RENDERER_ACCELERATED  uint32 = 0x00000002
	RENDERER_PRESENTVSYNC uint32 = 0x00000004
)

type Rect struct {
	X, Y, W, H int32
}

type Window struct {
	ptr  *window
	once sync.Once
}

func CreateWindow(title string, x, y, w, h int32, flags uint32) (*Window, error) {
	if strings.IndexByte(title, 0) >= 0 {
		return nil, ErrInvalidString
	}

	var p *window
	err := Call("create window", func() bool {
		p = _sdlCreateWindow(title, x, y, w, h, flags)
		return p != nil
	})
	if err != nil {
		return nil, err
	}

	return &Window{ptr: p}, nil
}

func (w *Window) Destroy() {
	if w == nil {
		return
	}

	w.once.Do(func() {
		p := w.ptr
		w.ptr = nil
		_ = Call("destroy window", func() bool {
			_sdlDestroyWindow(p)
			return true
		})
	})
}

// Renderer is a rendering context. Textures created against it are
// invalidated when it is destroyed.
type Renderer struct {
	ptr      *renderer
	mu       sync.Mutex
	textures map[*Texture]struct{}
}

func CreateRenderer(w *Window, index int32, flags uint32) (*Renderer, error) {
	if w == nil || w.ptr == nil {
		return nil, ErrFreed
	}

	var p *renderer
	err := Call("create renderer", func() bool {
		p = _sdlCreateRenderer(w.ptr, index, flags)
		return p != nil
	})
	if err != nil {
		return nil, err
	}

	return &Renderer{ptr: p, textures: make(map[*Texture]struct{})}, nil
}

// NewTexture runs create, a native call producing an SDL_Texture for the
// given SDL_Renderer pointer, through the call gate and takes ownership of
// the result. The renderer is held for the duration of the call so it cannot
// be destroyed underneath it.
func (r *Renderer) NewTexture(op string, create func(rp unsafe.Pointer) unsafe.Pointer) (*Texture, error) {
	var t *Texture

	err := r.with(op, func(p *renderer) bool {
		tp := (*texture)(create(unsafe.Pointer(p)))
		if tp == nil {
			return false
		}

		t = &Texture{ptr: tp, r: r}
		r.textures[t] = struct{}{}

		return true
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Renderer) SetDrawColor(c color.Color) error {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return r.with("set draw color", func(p *renderer) bool {
		return _sdlSetRenderDrawColor(p, n.R, n.G, n.B, n.A) == 0
	})
}

func (r *Renderer) Clear() error {
	return r.with("render clear", func(p *renderer) bool {
		return _sdlRenderClear(p) == 0
	})
}

// Copy draws t, or the src part of it, into dst. A nil rect means the whole
// texture or the whole target.
func (r *Renderer) Copy(t *Texture, src, dst *Rect) error {
	if t == nil || t.r != r {
		return ErrFreed
	}

	var freed bool
	err := r.with("render copy", func(p *renderer) bool {
		tp := t.native()
		if tp == nil {
			freed = true
			return true
		}

		return _sdlRenderCopy(p, tp, src, dst) == 0
	})
	if err == nil && freed {
		return ErrFreed
	}

	return err
}

func (r *Renderer) Present() error {
	return r.with("render present", func(p *renderer) bool {
		_sdlRenderPresent(p)
		return true
	})
}

// Destroy releases the renderer and every texture created against it.
func (r *Renderer) Destroy() {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.ptr
	if p == nil {
		return
	}

	r.ptr = nil
	for t := range r.textures {
		t.mu.Lock()
		t.ptr = nil
		t.mu.Unlock()
	}
	r.textures = nil

	_ = Call("destroy renderer", func() bool {
		_sdlDestroyRenderer(p)
		return true
	})
}

// Destroyed reports whether Destroy has been called.
func (r *Renderer) Destroyed() bool {
	if r == nil {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ptr == nil
}

func (r *Renderer) with(op string, fn func(*renderer) bool) error {
	if r == nil {
		return ErrDestroyed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ptr == nil {
		return ErrDestroyed
	}

	return Call(op, func() bool {
		return fn(r.ptr)
	})
}

// Texture is a renderer-scoped image. It never outlives its renderer.
type Texture struct {
	mu  sync.Mutex
	ptr *texture
	r   *Renderer
}

// Valid reports whether the texture and its renderer are still alive.
func (t *Texture) Valid() bool {
	return t.native() != nil
}

// Destroy releases the texture. It is a no-op once the texture or its
// renderer has been destroyed.
func (t *Texture) Destroy() {
	if t == nil {
		return
	}

	r := t.r
	r.mu.Lock()
	defer r.mu.Unlock()

	t.mu.Lock()
	p := t.ptr
	t.ptr = nil
	t.mu.Unlock()

	if p == nil {
		return
	}

	delete(r.textures, t)

	_ = Call("destroy texture", func() bool {
		_sdlDestroyTexture(p)
		return true
	})
}

func (t *Texture) native() *texture {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ptr
}
