package main

import (
	"testing"

	"github.com/gen2brain/sdlimage"
)

func TestBuilder(t *testing.T) {
	b, err := builder("png, JPG,webp")
	if err != nil {
		t.Fatal(err)
	}

	if got, want := b.Flags(), sdlimage.InitPNG|sdlimage.InitJPG|sdlimage.InitWEBP; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := builder("png,bmp"); err == nil {
		t.Error("expected error for bmp")
	}

	if _, err := builder("heic"); err == nil {
		t.Error("expected error for unknown format")
	}
}
