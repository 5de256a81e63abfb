// Package fonts provides the typefaces used for diagram text.
//
// The Go fonts ship embedded in their upstream packages, so rendering
// needs no font files on disk and produces the same glyphs on every
// host. A [Cache] hands out sized faces and reuses them across draw
// calls.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is the CSS font-family used in SVG output. The raster sink uses
// the embedded Go fonts, which are sans-serif, so the two outputs stay
// visually consistent.
const Family = "sans-serif"

// Cache parses the embedded fonts once and memoizes faces per size and
// weight. Not safe for concurrent use; rendering is single-threaded.
type Cache struct {
	dpi     float64
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[key]font.Face
}

type key struct {
	size float64
	bold bool
}

// NewCache parses the embedded fonts for the given rendering DPI.
// Faces are sized in points, so pixels = points * dpi / 72.
func NewCache(dpi float64) (*Cache, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Cache{
		dpi:     dpi,
		regular: regular,
		bold:    bold,
		faces:   make(map[key]font.Face),
	}, nil
}

// Face returns a sized face, reusing a previously built one when
// possible.
func (c *Cache) Face(size float64, bold bool) font.Face {
	k := key{size: size, bold: bold}
	if f, ok := c.faces[k]; ok {
		return f
	}
	fnt := c.regular
	if bold {
		fnt = c.bold
	}
	f := truetype.NewFace(fnt, &truetype.Options{Size: size, DPI: c.dpi})
	c.faces[k] = f
	return f
}
