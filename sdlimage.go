// Package sdlimage binds SDL2_image, loaded at runtime with purego.
//
// Use Init to request format support and Finish to initialize the library:
//
//	ctx, err := sdlimage.Init().PNG().JPG().Finish()
//	if err != nil {
//		return err
//	}
//	defer ctx.Close()
//
//	surf, err := ctx.LoadSurface("image.png")
//
// All native calls are serialized behind one process-wide lock, and the error
// text of a failing call is captured before the lock is released.
package sdlimage

import (
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gen2brain/sdlimage/sdl"
)

var (
	ErrNoFormats          = errors.New("sdlimage: no formats requested")
	ErrBuilderFinished    = errors.New("sdlimage: builder already finished")
	ErrInvalidBuilder     = errors.New("sdlimage: builder not created by Init")
	ErrAlreadyInitialized = errors.New("sdlimage: library already initialized")
	ErrClosed             = errors.New("sdlimage: context closed")
	ErrInvalidString      = sdl.ErrInvalidString
)

// InitFlag is a bitmask of codecs to load at initialization.
type InitFlag uint32

const (
	InitJPG  InitFlag = 0x00000001
	InitPNG  InitFlag = 0x00000002
	InitTIF  InitFlag = 0x00000004
	InitWEBP InitFlag = 0x00000008
)

// Order of names in synthesized initialization errors.
var initFlagNames = []struct {
	flag InitFlag
	name string
}{
	{InitTIF, "TIF"},
	{InitPNG, "PNG"},
	{InitJPG, "JPG"},
	{InitWEBP, "WEBP"},
}

func (f InitFlag) String() string {
	var names []string
	for _, n := range initFlagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}

	return strings.Join(names, ", ")
}

// InitError reports that none of the requested codecs could be initialized.
type InitError struct {
	Requested InitFlag
	Granted   InitFlag
	Message   string
}

func (e *InitError) Error() string {
	return e.Message
}

func initFailureMessage(requested, granted InitFlag) string {
	return "could not initialize the following parts: " + (requested &^ granted).String()
}

// Builder accumulates the codecs requested from Init. A builder, and every
// builder derived from it, can be finished once. The zero Builder cannot be
// finished.
type Builder struct {
	flags    InitFlag
	finished *atomic.Bool
}

// Init starts an initialization request with no codecs selected.
func Init() Builder {
	return Builder{finished: new(atomic.Bool)}
}

func (b Builder) with(f InitFlag) Builder {
	b.flags |= f

	return b
}

func (b Builder) PNG() Builder  { return b.with(InitPNG) }
func (b Builder) JPG() Builder  { return b.with(InitJPG) }
func (b Builder) TIF() Builder  { return b.with(InitTIF) }
func (b Builder) WEBP() Builder { return b.with(InitWEBP) }

// Flags returns the accumulated mask.
func (b Builder) Flags() InitFlag {
	return b.flags
}

// live is set while a Context exists.
var live atomic.Bool

// Finish initializes the library with the accumulated mask.
//
// Initialization succeeds when at least one requested codec was granted;
// codecs that failed alongside are not reported as an error, so check
// Context.Granted when all of them are needed. When the library leaves no
// error text, the message lists the codecs that could not be initialized.
func (b Builder) Finish() (*Context, error) {
	if b.finished == nil {
		return nil, ErrInvalidBuilder
	}

	if !b.finished.CompareAndSwap(false, true) {
		return nil, ErrBuilderFinished
	}

	if b.flags == 0 {
		return nil, ErrNoFormats
	}

	if loadErr != nil {
		return nil, loadErr
	}

	if !live.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	var granted InitFlag
	err := sdl.Call("init", func() bool {
		granted = InitFlag(_imgInit(int32(b.flags)))
		return b.flags&granted != 0
	})
	if err != nil {
		live.Store(false)

		var se *sdl.Error
		if !errors.As(err, &se) {
			return nil, err
		}

		msg := se.Msg
		if msg == "" {
			msg = initFailureMessage(b.flags, granted)
		}

		return nil, &InitError{Requested: b.flags, Granted: granted, Message: msg}
	}

	Logger().Debug("initialized",
		zap.Stringer("requested", b.flags),
		zap.Stringer("granted", granted),
	)

	return &Context{s: &session{requested: b.flags, granted: granted}}, nil
}

// LinkedVersion returns the version of the loaded SDL2_image library.
func LinkedVersion() (sdl.Version, error) {
	if loadErr != nil {
		return sdl.Version{}, loadErr
	}

	var v sdl.Version
	err := sdl.Call("linked version", func() bool {
		p := _imgLinkedVersion()
		if p == nil {
			return false
		}
		v = *p

		return true
	})

	return v, err
}

// Dynamic reports whether both SDL2 and SDL2_image shared libraries were loaded.
func Dynamic() bool {
	return loadErr == nil
}

// LoadError returns the error recorded while loading the shared libraries, if any.
func LoadError() error {
	return loadErr
}
