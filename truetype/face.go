// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package truetype adapts this module's façade (package ttf) to
// golang.org/x/exp/shiny/font's Face interface, so that a parsed font can
// be used directly with that package's text-layout helpers.
package truetype

import (
	"image"
	"image/color"

	"github.com/vectorfont/ttf"
	"golang.org/x/exp/shiny/font"
	"golang.org/x/image/math/fixed"
)

// Options are optional arguments to NewFace.
type Options struct {
	// Size is the font size in points, as in "a 10 point font size".
	//
	// A zero value means to use a 12 point font size.
	Size float64

	// DPI is the dots-per-inch resolution.
	//
	// A zero value means to use 72 DPI.
	DPI float64

	// Hinting is how to quantize the glyph nodes.
	//
	// A zero value means to use no hinting.
	Hinting font.Hinting
}

func (o *Options) size() float64 {
	if o != nil && o.Size > 0 {
		return o.Size
	}
	return 12
}

func (o *Options) dpi() float64 {
	if o != nil && o.DPI > 0 {
		return o.DPI
	}
	return 72
}

func (o *Options) hinting() font.Hinting {
	if o != nil {
		switch o.Hinting {
		case font.HintingVertical, font.HintingFull:
			// TODO: support vertical hinting.
			return font.HintingFull
		}
	}
	return font.HintingNone
}

// NewFace returns a new font.Face for f, using this module's hinter and
// rasterizer rather than a platform's native glyph cache.
func NewFace(f *ttf.Face, opts *Options) font.Face {
	return &face{
		f:       f,
		hinting: opts.hinting(),
		ppem:    ttf.ComputePixelSize(opts.size(), opts.dpi()),
	}
}

type face struct {
	f       *ttf.Face
	hinting font.Hinting
	ppem    float64
}

// Close satisfies the font.Face interface.
func (a *face) Close() error { return nil }

// Kern satisfies the font.Face interface.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 {
	k := a.f.GetKerning(r0, r1, a.ppem)
	if a.hinting != font.HintingNone {
		k = (k + 32) &^ 63
	}
	return k
}

// alphaSurface adapts an *image.Alpha to this module's raster.Surface, so a
// Glyph can rasterize directly into a standard library image.
type alphaSurface struct{ img *image.Alpha }

func (s alphaSurface) Width() int  { return s.img.Bounds().Dx() }
func (s alphaSurface) Height() int { return s.img.Bounds().Dy() }
func (s alphaSurface) SetCoverage(x, y int, coverage uint8) {
	b := s.img.Bounds()
	s.img.SetAlpha(b.Min.X+x, b.Min.Y+y, color.Alpha{A: coverage})
}

// Glyph satisfies the font.Face interface.
func (a *face) Glyph(dot fixed.Point26_6, r rune) (
	newDot fixed.Point26_6, dr image.Rectangle, mask image.Image, maskp image.Point, ok bool) {

	index := a.f.Index(r)
	g, err := a.f.GetGlyph(index, a.ppem, a.hinting != font.HintingNone)
	if err != nil {
		return fixed.Point26_6{}, image.Rectangle{}, nil, image.Point{}, false
	}
	_, advance := g.HorizontalMetrics()
	newDot = fixed.Point26_6{X: dot.X + advance, Y: dot.Y}

	w, h := g.RenderWidth(), g.RenderHeight()
	if w <= 0 || h <= 0 {
		return newDot, image.Rectangle{}, nil, image.Point{}, true
	}
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	if err := g.RenderTo(alphaSurface{img}, 0, 0); err != nil {
		return fixed.Point26_6{}, image.Rectangle{}, nil, image.Point{}, false
	}

	minX, _, _, maxY := g.Bounds()
	ix, iy := int(dot.X>>6), int(dot.Y>>6)
	dr = image.Rect(0, 0, w, h).Add(image.Point{
		X: ix + minX.Floor(),
		Y: iy - maxY.Ceil(),
	})
	return newDot, dr, img, image.Point{}, true
}

// GlyphBounds satisfies the font.Face interface.
func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, err := a.f.GetGlyph(a.f.Index(r), a.ppem, a.hinting != font.HintingNone)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	minX, minY, maxX, maxY := g.Bounds()
	if minX > maxX || minY > maxY {
		return fixed.Rectangle26_6{}, g.Width(), true
	}
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: minX, Y: -maxY},
		Max: fixed.Point26_6{X: maxX, Y: -minY},
	}, g.Width(), true
}

// GlyphAdvance satisfies the font.Face interface.
func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, err := a.f.GetGlyph(a.f.Index(r), a.ppem, a.hinting != font.HintingNone)
	if err != nil {
		return 0, false
	}
	return g.Width(), true
}
