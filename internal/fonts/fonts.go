// Package fonts resolves the monospace face used for the prompt glyph.
package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// DefaultPaths is the ordered list of system fonts probed before falling
// back to the embedded face.
func DefaultPaths() []string {
	return []string{
		"/System/Library/Fonts/Courier.dfont",
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	}
}

// Resolve returns a face at the given point size from the first candidate
// path that reads and parses, falling back to the embedded Go Mono face
// and, should that ever fail to parse, to basicfont. Resolution never
// fails; candidate misses are logged and skipped.
func Resolve(paths []string, size float64, log logger) font.Face {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if log != nil {
				log.Infof("fonts", "candidate %s unavailable: %v", path, err)
			}
			continue
		}
		tt, err := truetype.Parse(data)
		if err != nil {
			if log != nil {
				log.Errorf("fonts", "candidate %s parse failed: %v", path, err)
			}
			continue
		}
		if log != nil {
			log.Infof("fonts", "loaded %s at %gpt", path, size)
		}
		return newFace(tt, size)
	}

	tt, err := truetype.Parse(gomono.TTF)
	if err != nil {
		if log != nil {
			log.Errorf("fonts", "embedded font parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	if log != nil {
		log.Infof("fonts", "using embedded Go Mono at %gpt", size)
	}
	return newFace(tt, size)
}

func newFace(tt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
