package sdlimage

import (
	"bytes"
	"errors"
	"image/jpeg"
	"io"
	"os"
	"testing"
)

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDecode(t *testing.T) {
	ctx := newContext(t)

	img, err := ctx.Decode(bytes.NewReader(encode(t, PNG, testImage(64, 48))))
	if err != nil {
		t.Fatal(err)
	}

	err = jpeg.Encode(io.Discard, img, nil)
	if err != nil {
		t.Error(err)
	}
}

func TestDecodeConfig(t *testing.T) {
	ctx := newContext(t)
	if ctx.Granted()&InitJPG == 0 {
		t.Skip("JPG support not available")
	}

	cfg, err := ctx.DecodeConfig(bytes.NewReader(encode(t, JPG, testImage(64, 48))))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 64 {
		t.Errorf("width: got %d, want %d", cfg.Width, 64)
	}

	if cfg.Height != 48 {
		t.Errorf("height: got %d, want %d", cfg.Height, 48)
	}
}

func TestDecodeInvalid(t *testing.T) {
	ctx := newContext(t)

	_, err := ctx.Decode(bytes.NewReader([]byte("not an image at all")))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v, want %v", err, ErrDecode)
	}

	_, err = ctx.Decode(bytes.NewReader(nil))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("empty: got %v, want %v", err, ErrDecode)
	}
}

func BenchmarkDecodePNG(b *testing.B) {
	ctx := newContext(b)
	data := encode(b, PNG, testImage(256, 256))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, err := ctx.decode(bytes.NewReader(data), false)
		if err != nil {
			b.Error(err)
		}
	}
}

func BenchmarkDecodeConfigPNG(b *testing.B) {
	ctx := newContext(b)
	data := encode(b, PNG, testImage(256, 256))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, err := ctx.decode(bytes.NewReader(data), true)
		if err != nil {
			b.Error(err)
		}
	}
}
