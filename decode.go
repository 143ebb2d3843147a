package sdlimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gen2brain/sdlimage/sdl"
)

var ErrDecode = errors.New("sdlimage: decode error")

// Decode reads an image in any format the library recognizes from r and
// returns it as *image.NRGBA.
func (c *Context) Decode(r io.Reader) (image.Image, error) {
	img, _, err := c.decode(r, false)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// DecodeConfig returns the dimensions of the image in r. The library has no
// header-only path, so the image is fully decoded.
func (c *Context) DecodeConfig(r io.Reader) (image.Config, error) {
	_, cfg, err := c.decode(r, true)
	if err != nil {
		return image.Config{}, err
	}

	return cfg, nil
}

func (c *Context) decode(r io.Reader, configOnly bool) (image.Image, image.Config, error) {
	var cfg image.Config
	var data bytes.Buffer

	_, err := data.ReadFrom(r)
	if err != nil {
		return nil, cfg, fmt.Errorf("read: %w", err)
	}

	if data.Len() == 0 {
		return nil, cfg, ErrDecode
	}

	rw, err := sdl.RWFromBytes(data.Bytes())
	if err != nil {
		return nil, cfg, err
	}
	defer rw.Close()

	surf, err := c.LoadSurfaceRW(rw, FormatAuto)
	if err != nil {
		return nil, cfg, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer surf.Free()

	cfg.Width = surf.Width()
	cfg.Height = surf.Height()
	cfg.ColorModel = color.NRGBAModel

	if configOnly {
		return nil, cfg, nil
	}

	img, err := surf.Image()
	if err != nil {
		return nil, cfg, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return img, cfg, nil
}
