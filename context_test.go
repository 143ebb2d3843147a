package sdlimage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gen2brain/sdlimage/sdl"
)

func TestIs(t *testing.T) {
	ctx := newContext(t)
	img := testImage(16, 16)

	for _, format := range []Format{PNG, JPG, GIF, BMP, TIF} {
		data := encode(t, format, img)

		t.Run(format.String(), func(t *testing.T) {
			rw := rwFrom(t, data)

			if !ctx.Is(rw, format) {
				t.Errorf("Is(%v) = false", format)
			}

			for _, other := range []Format{PNG, JPG, GIF, BMP, TIF} {
				if other != format && ctx.Is(rw, other) {
					t.Errorf("Is(%v) = true for %v data", other, format)
				}
			}

			pos, err := rw.Tell()
			if err != nil {
				t.Fatal(err)
			}
			if pos != 0 {
				t.Errorf("stream moved to %d", pos)
			}
		})
	}
}

func TestIsTGA(t *testing.T) {
	ctx := newContext(t)
	rw := rwFrom(t, testTGA)

	if ctx.Is(rw, TGA) {
		t.Error("Is(TGA) = true")
	}

	surf, err := ctx.LoadSurfaceRW(rw, TGA)
	if err != nil {
		t.Fatal(err)
	}
	defer surf.Free()

	if surf.Width() != 2 || surf.Height() != 2 {
		t.Errorf("size: got %dx%d, want 2x2", surf.Width(), surf.Height())
	}
}

func TestIsAuto(t *testing.T) {
	ctx := newContext(t)
	rw := rwFrom(t, encode(t, PNG, testImage(2, 2)))

	if ctx.Is(rw, FormatAuto) {
		t.Error("Is(FormatAuto) = true")
	}

	if ctx.Is(rw, Format(100)) {
		t.Error("Is(invalid) = true")
	}
}

func TestLoadSurface(t *testing.T) {
	ctx := newContext(t)
	want := testImage(20, 10)

	path := filepath.Join(t.TempDir(), "test.png")
	writeFile(t, path, encode(t, PNG, want))

	surf, err := ctx.LoadSurface(path)
	if err != nil {
		t.Fatal(err)
	}
	defer surf.Free()

	if surf.Width() != 20 || surf.Height() != 10 {
		t.Fatalf("size: got %dx%d, want 20x10", surf.Width(), surf.Height())
	}

	got, err := surf.Image()
	if err != nil {
		t.Fatal(err)
	}

	assertEqual(t, got, want)
}

func TestLoadSurfaceMissing(t *testing.T) {
	ctx := newContext(t)

	_, err := ctx.LoadSurface(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error")
	}

	var se *sdl.Error
	if !errors.As(err, &se) {
		t.Fatalf("got %T, want *sdl.Error", err)
	}

	if se.Msg == "" {
		t.Error("empty error message")
	}
}

func TestLoadSurfaceInvalidPath(t *testing.T) {
	ctx := newContext(t)

	if _, err := ctx.LoadSurface("a\x00b.png"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("got %v, want %v", err, ErrInvalidString)
	}

	if err := ctx.SaveSurface(nil, "a\x00b.png"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("got %v, want %v", err, ErrInvalidString)
	}
}

func TestLoadSurfaceRW(t *testing.T) {
	ctx := newContext(t)
	img := testImage(8, 4)

	for _, format := range []Format{FormatAuto, PNG, BMP, GIF, TIF} {
		src := format
		if src == FormatAuto {
			src = PNG
		}
		data := encode(t, src, img)

		t.Run(format.String(), func(t *testing.T) {
			if format == TIF && ctx.Granted()&InitTIF == 0 {
				t.Skip("TIF support not available")
			}

			surf, err := ctx.LoadSurfaceRW(rwFrom(t, data), format)
			if err != nil {
				t.Fatal(err)
			}
			defer surf.Free()

			if surf.Width() != 8 || surf.Height() != 4 {
				t.Errorf("size: got %dx%d, want 8x4", surf.Width(), surf.Height())
			}
		})
	}
}

func TestLoadSurfaceRWWrongFormat(t *testing.T) {
	ctx := newContext(t)
	rw := rwFrom(t, encode(t, PNG, testImage(4, 4)))

	if _, err := ctx.LoadSurfaceRW(rw, BMP); err == nil {
		t.Error("expected error loading PNG data as BMP")
	}
}

func TestLoadSurfaceRWClosed(t *testing.T) {
	ctx := newContext(t)

	rw, err := sdl.RWFromBytes(encode(t, PNG, testImage(4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	rw.Close()

	if _, err := ctx.LoadSurfaceRW(rw, PNG); !errors.Is(err, sdl.ErrFreed) {
		t.Errorf("got %v, want %v", err, sdl.ErrFreed)
	}
}

func TestLoadSurfaceXPM(t *testing.T) {
	ctx := newContext(t)

	surf, err := ctx.LoadSurfaceXPM([]string{
		"2 2 2 1",
		"a c #FF0000",
		"b c #0000FF",
		"ab",
		"ba",
	})
	if err != nil {
		t.Fatal(err)
	}
	defer surf.Free()

	img, err := surf.Image()
	if err != nil {
		t.Fatal(err)
	}

	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}

	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("(0,0): got %v, want %v", got, red)
	}

	if got := img.NRGBAAt(1, 0); got != blue {
		t.Errorf("(1,0): got %v, want %v", got, blue)
	}
}

func TestLoadSurfaceXPMInvalid(t *testing.T) {
	ctx := newContext(t)

	if _, err := ctx.LoadSurfaceXPM(nil); err == nil {
		t.Error("expected error for empty xpm")
	}

	if _, err := ctx.LoadSurfaceXPM([]string{"1 1 1 1", "a c #000000", "a\x00"}); !errors.Is(err, ErrInvalidString) {
		t.Errorf("got %v, want %v", err, ErrInvalidString)
	}
}

func TestSaveSurfaceRoundTrip(t *testing.T) {
	ctx := newContext(t)
	want := testImage(17, 9)

	surf, err := ctx.LoadSurfaceRW(rwFrom(t, encode(t, PNG, want)), PNG)
	if err != nil {
		t.Fatal(err)
	}
	defer surf.Free()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := ctx.SaveSurface(surf, path); err != nil {
		t.Fatal(err)
	}

	reloaded, err := ctx.LoadSurface(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reloaded.Free()

	got, err := reloaded.Image()
	if err != nil {
		t.Fatal(err)
	}

	assertEqual(t, got, want)
}

func TestSaveSurfaceRW(t *testing.T) {
	ctx := newContext(t)
	want := testImage(32, 32)

	surf, err := ctx.LoadSurfaceRW(rwFrom(t, encode(t, PNG, want)), FormatAuto)
	if err != nil {
		t.Fatal(err)
	}
	defer surf.Free()

	dst, err := sdl.NewMemRW(32*32*4 + 4096)
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Close()

	if err := ctx.SaveSurfaceRW(surf, dst); err != nil {
		t.Fatal(err)
	}

	data, err := dst.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	got, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	assertEqual(t, got, want)
}

func TestSaveFreedSurface(t *testing.T) {
	ctx := newContext(t)

	surf, err := ctx.LoadSurfaceRW(rwFrom(t, encode(t, PNG, testImage(4, 4))), PNG)
	if err != nil {
		t.Fatal(err)
	}
	surf.Free()

	if err := ctx.SaveSurface(surf, filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, sdl.ErrFreed) {
		t.Errorf("got %v, want %v", err, sdl.ErrFreed)
	}
}

func TestLoadTextureDestroyedRenderer(t *testing.T) {
	ctx := newContext(t)

	if _, err := ctx.LoadTexture(nil, "x.png"); !errors.Is(err, sdl.ErrDestroyed) {
		t.Errorf("got %v, want %v", err, sdl.ErrDestroyed)
	}
}

func assertEqual(t *testing.T, got, want image.Image) {
	t.Helper()

	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds: got %v, want %v", got.Bounds(), want.Bounds())
	}

	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.NRGBAModel.Convert(got.At(x, y))
			w := color.NRGBAModel.Convert(want.At(x, y))
			if g != w {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, g, w)
			}
		}
	}
}
