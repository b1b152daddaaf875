// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package freetype provides a convenient API for drawing a string of text
// onto an image, built on top of this module's ttf façade and raster
// rasterizer. Use package ttf directly, or package raster, for lower-level
// control over glyph lookup and rasterization.
package freetype

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/vectorfont/ttf"
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/sfnt"
)

// AlphaSurface adapts an *image.Alpha to raster.Surface, so that a
// Rasterizer (or a ttf.Glyph's RenderTo) can paint coverage directly into a
// standard library image.
type AlphaSurface struct {
	Image *image.Alpha
}

// NewAlphaSurface wraps img as a raster.Surface.
func NewAlphaSurface(img *image.Alpha) *AlphaSurface { return &AlphaSurface{Image: img} }

func (s *AlphaSurface) Width() int  { return s.Image.Bounds().Dx() }
func (s *AlphaSurface) Height() int { return s.Image.Bounds().Dy() }

func (s *AlphaSurface) SetCoverage(x, y int, coverage uint8) {
	b := s.Image.Bounds()
	s.Image.SetAlpha(b.Min.X+x, b.Min.Y+y, color.Alpha{A: coverage})
}

// A cacheEntry holds a rasterized glyph mask keyed by glyph index and a
// quantized sub-pixel offset, the same caching granularity the teacher's
// Context used.
type cacheEntry struct {
	valid  bool
	glyph  sfnt.Index
	mask   *image.Alpha
	offset image.Point
}

const (
	nGlyphs     = 256
	nXFractions = 4
)

// Context holds the state for drawing a string of text in a given face and
// size: the destination image, the paint source, the clip rectangle, and a
// small glyph mask cache keyed by glyph index and sub-pixel offset.
type Context struct {
	face  *ttf.Face
	ppem  float64
	clip  image.Rectangle
	dst   draw.Image
	src   image.Image
	cache [nGlyphs * nXFractions]cacheEntry
}

// NewContext creates a Context with no font, 12pt size at 72 DPI.
func NewContext() *Context {
	return &Context{ppem: ttf.ComputePixelSize(12, 72)}
}

// SetFont sets the face used to draw text and invalidates the glyph cache.
func (c *Context) SetFont(face *ttf.Face) {
	c.face = face
	c.invalidate()
}

// SetFontSize sets the size in points at the given DPI, and invalidates the
// glyph cache.
func (c *Context) SetFontSize(points, dpi float64) {
	c.ppem = ttf.ComputePixelSize(points, dpi)
	c.invalidate()
}

// SetDst sets the destination image for draw operations.
func (c *Context) SetDst(dst draw.Image) { c.dst = dst }

// SetSrc sets the paint source for draw operations, typically an
// image.Uniform carrying the text color.
func (c *Context) SetSrc(src image.Image) { c.src = src }

// SetClip sets the clip rectangle for drawing.
func (c *Context) SetClip(clip image.Rectangle) { c.clip = clip }

func (c *Context) invalidate() {
	for i := range c.cache {
		c.cache[i] = cacheEntry{}
	}
}

// glyph returns the rasterized mask and offset for index at the given
// 26.6 sub-pixel horizontal position, consulting (and populating) the
// cache.
func (c *Context) glyph(index sfnt.Index, x fixed.Int26Dot6) (*image.Alpha, image.Point, error) {
	ix := x.Floor()
	fx := x - fixed.Int26Dot6(ix<<6)
	tx := int(fx) / (64 / nXFractions)
	t := (int(index)%nGlyphs)*nXFractions + tx
	if c.cache[t].valid && c.cache[t].glyph == index {
		return c.cache[t].mask, c.cache[t].offset.Add(image.Point{X: ix}), nil
	}
	g, err := c.face.GetGlyph(index, c.ppem, true)
	if err != nil {
		return nil, image.Point{}, err
	}
	w, h := g.RenderWidth(), g.RenderHeight()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if err := g.RenderTo(NewAlphaSurface(mask), 0, 0); err != nil {
		return nil, image.Point{}, err
	}
	bearing, _ := g.HorizontalMetrics()
	_, _, _, maxY := g.Bounds()
	offset := image.Point{X: bearing.Floor(), Y: -maxY.Ceil()}
	c.cache[t] = cacheEntry{valid: true, glyph: index, mask: mask, offset: offset}
	return mask, offset.Add(image.Point{X: ix}), nil
}

// DrawString draws s with its baseline at (x, y) in whole pixels, x may
// carry sub-pixel fraction in 26.6, and returns x advanced by the string's
// extent.
func (c *Context) DrawString(s string, x fixed.Int26Dot6, y int) (fixed.Int26Dot6, error) {
	if c.face == nil {
		return 0, errors.New("freetype: DrawString called with no font set")
	}
	var prev rune
	hasPrev := false
	for _, r := range s {
		index := c.face.Index(r)
		if hasPrev {
			x += c.face.GetKerning(prev, r, c.ppem)
		}
		mask, offset, err := c.glyph(index, x)
		if err != nil {
			return 0, err
		}
		glyphRect := mask.Bounds().Add(offset).Add(image.Point{Y: y})
		dr := c.clip.Intersect(glyphRect)
		if !dr.Empty() {
			mp := image.Point{X: dr.Min.X - glyphRect.Min.X, Y: dr.Min.Y - glyphRect.Min.Y}
			draw.DrawMask(c.dst, dr, c.src, image.Point{}, mask, mp, draw.Over)
		}
		_, advance := c.Advance(index)
		x += advance
		prev, hasPrev = r, true
	}
	return x, nil
}

// Advance looks up a glyph's left side bearing and advance width in pixels
// at the Context's current size.
func (c *Context) Advance(index sfnt.Index) (bearing, advance fixed.Int26Dot6) {
	g, err := c.face.GetGlyph(index, c.ppem, true)
	if err != nil {
		return 0, 0
	}
	return g.HorizontalMetrics()
}
