package sdlimage

import (
	"testing"
)

func TestFormatString(t *testing.T) {
	if got := PNG.String(); got != "PNG" {
		t.Errorf("got %q", got)
	}

	if got := FormatAuto.String(); got != "auto" {
		t.Errorf("got %q", got)
	}

	if got := Format(99).String(); got != "Format(99)" {
		t.Errorf("got %q", got)
	}
}

func TestFormatsTable(t *testing.T) {
	all := Formats()
	if len(all) != 15 {
		t.Fatalf("got %d formats, want 15", len(all))
	}

	for _, f := range all {
		if f == FormatAuto {
			t.Error("Formats includes FormatAuto")
		}

		e := formats[f]
		if e.name == "" || len(e.exts) == 0 {
			t.Errorf("%d: incomplete entry", f)
		}

		if !Dynamic() {
			continue
		}

		if e.load == nil {
			t.Errorf("%v: loader not bound", f)
		}

		if f == TGA {
			if e.probe != nil {
				t.Error("TGA probe bound")
			}
		} else if e.probe == nil {
			t.Errorf("%v: probe not bound", f)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{".jpeg", JPG},
		{"jpg", JPG},
		{"tiff", TIF},
		{"webp", WEBP},
		{"ppm", PNM},
		{"auto", FormatAuto},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}

		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "heic", "."} {
		if _, err := ParseFormat(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if got := FormatFromPath("/tmp/a.Tga"); got != TGA {
		t.Errorf("got %v, want TGA", got)
	}

	if got := FormatFromPath("/tmp/a"); got != FormatAuto {
		t.Errorf("got %v, want auto", got)
	}

	if got := FormatFromPath("/tmp/a.heic"); got != FormatAuto {
		t.Errorf("got %v, want auto", got)
	}
}

func TestInitFlagString(t *testing.T) {
	if got := (InitPNG | InitJPG).String(); got != "PNG, JPG" {
		t.Errorf("got %q", got)
	}

	if got := InitFlag(0).String(); got != "" {
		t.Errorf("got %q", got)
	}
}
