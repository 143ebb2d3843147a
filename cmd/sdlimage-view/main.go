// Command sdlimage-view shows an image in a window until it is closed or
// Escape is pressed.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gen2brain/sdlimage"
	"github.com/gen2brain/sdlimage/sdl"
)

func init() {
	// SDL video calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width   = flag.Int("width", 800, "Window width")
		height  = flag.Int("height", 600, "Window height")
		title   = flag.String("title", "sdlimage demo: Video", "Window title")
		formats = flag.String("formats", "png,jpg", "Codecs to initialize (png,jpg,tif,webp)")
		debug   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sdlimage-view [flags] /path/to/image.(png|jpg)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	sdl.SetLogger(logger.Named("sdl"))
	sdlimage.SetLogger(logger.Named("sdlimage"))

	cfg := config{
		path:    flag.Arg(0),
		title:   *title,
		width:   int32(*width),
		height:  int32(*height),
		formats: *formats,
	}

	if err := run(logger, cfg); err != nil {
		logger.Error("failed", zap.Error(err))
		os.Exit(1)
	}
}

type config struct {
	path    string
	title   string
	width   int32
	height  int32
	formats string
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func builder(formats string) (sdlimage.Builder, error) {
	b := sdlimage.Init()

	for _, name := range strings.Split(formats, ",") {
		f, err := sdlimage.ParseFormat(strings.TrimSpace(name))
		if err != nil {
			return b, err
		}

		switch f {
		case sdlimage.PNG:
			b = b.PNG()
		case sdlimage.JPG:
			b = b.JPG()
		case sdlimage.TIF:
			b = b.TIF()
		case sdlimage.WEBP:
			b = b.WEBP()
		default:
			return b, fmt.Errorf("%v needs no initialization", f)
		}
	}

	return b, nil
}

func run(logger *zap.Logger, cfg config) error {
	b, err := builder(cfg.formats)
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	ctx, err := b.Finish()
	if err != nil {
		return err
	}
	defer ctx.Close()

	if v, err := sdlimage.LinkedVersion(); err == nil {
		logger.Info("SDL2_image", zap.Stringer("version", v), zap.Stringer("codecs", ctx.Granted()))
	}

	window, err := sdl.CreateWindow(cfg.title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, cfg.width, cfg.height, sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	texture, err := ctx.LoadTexture(renderer, cfg.path)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	// White background, in case the image is transparent.
	if err := renderer.SetDrawColor(color.White); err != nil {
		return err
	}

	if err := renderer.Clear(); err != nil {
		return err
	}

	if err := renderer.Copy(texture, nil, nil); err != nil {
		return err
	}

	if err := renderer.Present(); err != nil {
		return err
	}

	for {
		for {
			ev, ok := sdl.PollEvent()
			if !ok {
				break
			}

			switch {
			case ev.Type == sdl.QUIT:
				return nil
			case ev.Type == sdl.KEYDOWN && ev.Key == sdl.K_ESCAPE:
				return nil
			}
		}

		time.Sleep(10 * time.Millisecond)
	}
}
