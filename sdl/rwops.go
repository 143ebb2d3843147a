package sdl

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"unsafe"
)

var (
	ErrInvalidString = errors.New("sdl: string contains NUL byte")
	ErrNotMemory     = errors.New("sdl: RWops is not memory backed")
	ErrTooLarge      = errors.New("sdl: memory stream too large")
)

// checkSize rejects buffer sizes SDL's int sized memory streams cannot hold.
func checkSize(n int) error {
	if n < 0 || int64(n) > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, n)
	}

	return nil
}

// RWops is an SDL_RWops byte stream, used in place of a file path.
type RWops struct {
	ptr    *rwops
	mem    unsafe.Pointer
	size   int
	memory bool
	once   sync.Once
}

// RWFromFile opens path with an fopen style mode.
func RWFromFile(path, mode string) (*RWops, error) {
	if strings.IndexByte(path, 0) >= 0 || strings.IndexByte(mode, 0) >= 0 {
		return nil, ErrInvalidString
	}

	var p *rwops
	err := Call("open file", func() bool {
		p = _sdlRWFromFile(path, mode)
		return p != nil
	})
	if err != nil {
		return nil, err
	}

	return &RWops{ptr: p}, nil
}

// RWFromBytes returns a read-only stream over a copy of b held in SDL memory.
func RWFromBytes(b []byte) (*RWops, error) {
	if err := checkSize(len(b)); err != nil {
		return nil, err
	}

	rw := &RWops{size: len(b), memory: true}

	err := Call("open memory", func() bool {
		rw.mem = Malloc(len(b))
		if rw.mem != nil {
			copy(unsafe.Slice((*byte)(rw.mem), len(b)), b)
		}

		rw.ptr = _sdlRWFromConstMem(rw.mem, int32(len(b)))
		if rw.ptr == nil {
			Free(rw.mem)
			rw.mem = nil
			return false
		}

		return true
	})
	if err != nil {
		return nil, err
	}

	return rw, nil
}

// NewMemRW returns a writable stream over capacity bytes of SDL memory.
// Writes past the capacity fail.
func NewMemRW(capacity int) (*RWops, error) {
	if err := checkSize(capacity); err != nil {
		return nil, err
	}

	rw := &RWops{size: capacity, memory: true}

	err := Call("open memory", func() bool {
		rw.mem = Malloc(capacity)
		rw.ptr = _sdlRWFromMem(rw.mem, int32(capacity))
		if rw.ptr == nil {
			Free(rw.mem)
			rw.mem = nil
			return false
		}

		return true
	})
	if err != nil {
		return nil, err
	}

	return rw, nil
}

// Ptr returns the native SDL_RWops pointer, or nil after Close.
func (rw *RWops) Ptr() unsafe.Pointer {
	if rw == nil {
		return nil
	}

	return unsafe.Pointer(rw.ptr)
}

// Seek implements io.Seeker.
func (rw *RWops) Seek(offset int64, whence int) (int64, error) {
	if rw == nil || rw.ptr == nil {
		return 0, ErrFreed
	}

	var pos int64
	err := Call("seek", func() bool {
		pos = _sdlRWseek(rw.ptr, offset, int32(whence))
		return pos >= 0
	})

	return pos, err
}

// Tell returns the current offset in the stream.
func (rw *RWops) Tell() (int64, error) {
	return rw.Seek(0, io.SeekCurrent)
}

// Bytes returns a copy of the memory before the current offset of a stream
// created by NewMemRW or RWFromBytes.
func (rw *RWops) Bytes() ([]byte, error) {
	if rw == nil || rw.ptr == nil {
		return nil, ErrFreed
	}

	if !rw.memory {
		return nil, ErrNotMemory
	}

	n, err := rw.Tell()
	if err != nil {
		return nil, err
	}

	if n > int64(rw.size) {
		n = int64(rw.size)
	}

	out := make([]byte, n)
	if n > 0 {
		copy(out, unsafe.Slice((*byte)(rw.mem), n))
	}

	return out, nil
}

// Close closes the stream and releases memory owned by it.
func (rw *RWops) Close() error {
	if rw == nil {
		return nil
	}

	var err error
	rw.once.Do(func() {
		p, mem := rw.ptr, rw.mem
		rw.ptr, rw.mem = nil, nil
		if p == nil {
			return
		}

		err = Call("close", func() bool {
			ret := _sdlRWclose(p)
			Free(mem)
			return ret == 0
		})
	})

	return err
}
