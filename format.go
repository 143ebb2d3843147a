package sdlimage

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"
)

// Format is an image format known to SDL2_image.
type Format int

const (
	// FormatAuto leaves format detection to the library.
	FormatAuto Format = iota
	CUR
	ICO
	BMP
	PNM
	XPM
	XCF
	PCX
	GIF
	JPG
	TIF
	PNG
	TGA
	LBM
	XV
	WEBP

	formatCount
)

type formatEntry struct {
	name string
	exts []string
	// load and probe are bound to IMG_Load<name>_RW and IMG_is<name>.
	load  func(unsafe.Pointer) unsafe.Pointer
	probe func(unsafe.Pointer) int32
}

var formats = [formatCount]formatEntry{
	FormatAuto: {name: "auto"},
	CUR:        {name: "CUR", exts: []string{".cur"}},
	ICO:        {name: "ICO", exts: []string{".ico"}},
	BMP:        {name: "BMP", exts: []string{".bmp"}},
	PNM:        {name: "PNM", exts: []string{".pnm", ".pbm", ".pgm", ".ppm"}},
	XPM:        {name: "XPM", exts: []string{".xpm"}},
	XCF:        {name: "XCF", exts: []string{".xcf"}},
	PCX:        {name: "PCX", exts: []string{".pcx"}},
	GIF:        {name: "GIF", exts: []string{".gif"}},
	JPG:        {name: "JPG", exts: []string{".jpg", ".jpeg"}},
	TIF:        {name: "TIF", exts: []string{".tif", ".tiff"}},
	PNG:        {name: "PNG", exts: []string{".png"}},
	TGA:        {name: "TGA", exts: []string{".tga"}},
	LBM:        {name: "LBM", exts: []string{".lbm", ".iff"}},
	XV:         {name: "XV", exts: []string{".xv"}},
	WEBP:       {name: "WEBP", exts: []string{".webp"}},
}

func (f Format) String() string {
	if f < 0 || f >= formatCount {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formats[f].name
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	return f >= 0 && f < formatCount
}

// Formats returns the concrete formats, without FormatAuto.
func Formats() []Format {
	out := make([]Format, 0, formatCount-1)
	for f := CUR; f < formatCount; f++ {
		out = append(out, f)
	}

	return out
}

// ParseFormat returns the format named by s, matched case-insensitively
// against format names and file extensions, with or without the dot.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	if name == "" {
		return FormatAuto, fmt.Errorf("sdlimage: empty format")
	}

	for f := FormatAuto; f < formatCount; f++ {
		if strings.ToLower(formats[f].name) == name {
			return f, nil
		}

		for _, ext := range formats[f].exts {
			if ext[1:] == name {
				return f, nil
			}
		}
	}

	return FormatAuto, fmt.Errorf("sdlimage: unknown format %q", s)
}

// FormatFromPath returns the format matching the extension of path, or
// FormatAuto when the extension is unknown.
func FormatFromPath(path string) Format {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatAuto
	}

	f, err := ParseFormat(ext)
	if err != nil {
		return FormatAuto
	}

	return f
}
