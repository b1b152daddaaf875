// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package ttf decodes SFNT/TrueType fonts, hints their outlines with the
// embedded bytecode interpreter, and rasterizes the result into 8-bit
// antialiased coverage. It composes three independent subsystems — sfnt
// for container and glyph decoding, hint for bytecode execution, and
// raster for scanline rasterization — behind a single Face/Glyph API, in
// the same spirit as freetype-go's Context façade over its own truetype
// and raster packages.
package ttf

import (
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/hint"
	"github.com/vectorfont/ttf/sfnt"
	"github.com/vectorfont/ttf/ttferror"
)

// Collection is a parsed font file that may hold more than one face (a
// TrueType Collection); a bare .ttf/.otf parses to a one-face Collection.
type Collection struct {
	raw *sfnt.Collection
}

// Parse decodes the SFNT or TTC directory at the start of data. It does
// not decode any individual face's tables; call Face to do that.
func Parse(data []byte) (*Collection, error) {
	raw, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Collection{raw: raw}, nil
}

// FaceCount returns the number of faces in the collection.
func (c *Collection) FaceCount() int { return c.raw.FaceCount() }

// Face decodes and returns the face at index, ready for glyph and metric
// lookups. Each Face owns its own hinting state; reading the same face
// index twice yields two independent Faces that share no mutable state, so
// each can be used from its own goroutine.
func (c *Collection) Face(index int) (*Face, error) {
	font, err := c.raw.ReadFace(index)
	if err != nil {
		return nil, err
	}
	return &Face{font: font}, nil
}

// Face is one fully decoded font face: its tables, plus the hinting state
// needed to render glyphs at a given pixel size. A Face is not safe for
// concurrent use — the module's concurrency model is one Face (and its
// Hinter) per goroutine; callers needing to render from multiple
// goroutines should decode one Face per goroutine from the same
// Collection, which itself may be shared freely since it is read-only.
type Face struct {
	font *sfnt.Font

	hinter       *hint.Hinter
	hintedScale  fixed.Int26Dot6
	hintedInited bool
}

// ParseFace is a convenience wrapper around Parse + Face(0) for the common
// case of a data blob holding exactly one face.
func ParseFace(data []byte) (*Face, error) {
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return c.Face(0)
}

// UnitsPerEm returns the size of the face's em square, in FUnits.
func (f *Face) UnitsPerEm() int { return f.font.UnitsPerEm() }

// GlyphCount returns the number of glyphs the face defines.
func (f *Face) GlyphCount() int { return f.font.GlyphCount() }

// Index returns the glyph index the face's cmap maps rune c to, or 0
// (.notdef) if c is unmapped.
func (f *Face) Index(c rune) sfnt.Index { return f.font.Index(c) }

// FamilyName and SubfamilyName return the face's name-table strings (e.g.
// "Open Sans", "Bold"), or empty strings if the face carries no name table.
func (f *Face) FamilyName() string    { return f.font.FamilyName() }
func (f *Face) SubfamilyName() string { return f.font.SubfamilyName() }

// ComputePixelSize converts a point size at a given device resolution
// (dots per inch) into pixels per em, the unit every other sizing
// function in this package takes.
func ComputePixelSize(points, dpi float64) float64 {
	return points * dpi / 72
}

// ComputeScale converts a pixels-per-em size into the 26.6 fixed-point
// scale the hinting and rasterization subsystems operate in.
func ComputeScale(pixelsPerEm float64) fixed.Int26Dot6 {
	return fixed.Int26Dot6(pixelsPerEm*64 + 0.5)
}

// Metrics is the face-wide, pixel-scaled line and glyph metrics for one
// pixel size.
type Metrics struct {
	Ascent, Descent, LineHeight      fixed.Int26Dot6
	XHeight, CapHeight               fixed.Int26Dot6
	UnderlineSize, UnderlinePosition fixed.Int26Dot6
	IsFixedPitch                     bool
}

// GetFaceMetrics returns the face's line metrics scaled to pixelsPerEm.
func (f *Face) GetFaceMetrics(pixelsPerEm float64) Metrics {
	m := f.font.Metrics()
	scale := ComputeScale(pixelsPerEm)
	sc := func(funits int16) fixed.Int26Dot6 {
		return fixed.Int26Dot6((int64(funits)*int64(scale) + int64(m.UnitsPerEm)/2) / int64(m.UnitsPerEm))
	}
	return Metrics{
		Ascent:            sc(m.Ascent),
		Descent:           sc(m.Descent),
		LineHeight:        sc(m.LineHeight),
		XHeight:           sc(m.XHeight),
		CapHeight:         sc(m.CapHeight),
		UnderlineSize:     sc(m.UnderlineSize),
		UnderlinePosition: sc(m.UnderlinePosition),
		IsFixedPitch:      m.IsFixedPitch,
	}
}

// GetKerning returns the horizontal kerning adjustment, in pixels, to
// apply between left and right at the given pixel size.
func (f *Face) GetKerning(left, right rune, pixelsPerEm float64) fixed.Int26Dot6 {
	li, ri := f.font.Index(left), f.font.Index(right)
	funits := f.font.Kerning(li, ri)
	if funits == 0 {
		return 0
	}
	scale := ComputeScale(pixelsPerEm)
	upem := int64(f.font.UnitsPerEm())
	return fixed.Int26Dot6((int64(funits)*int64(scale) + upem/2) / upem)
}

// hinterAt returns this Face's Hinter, (re-)initialized for scale if it
// has not yet been used at that scale. Reusing one Hinter across glyphs at
// the same scale avoids re-running fpgm/prep per glyph, matching the
// bytecode interpreter's documented once-per-scale-change contract.
func (f *Face) hinterAt(scale fixed.Int26Dot6) (*hint.Hinter, error) {
	if f.hinter == nil {
		f.hinter = hint.NewHinter(f.font)
	}
	if !f.hintedInited || f.hintedScale != scale {
		if err := f.hinter.Init(scale); err != nil {
			return nil, err
		}
		f.hintedScale = scale
		f.hintedInited = true
	}
	return f.hinter, nil
}

// GetGlyph decodes, scales and — if hinting is requested — hints the
// outline for glyph index i at the given pixel size, returning a Glyph
// ready to rasterize.
func (f *Face) GetGlyph(i sfnt.Index, pixelsPerEm float64, hinting bool) (*Glyph, error) {
	outline, err := f.font.Glyph(i)
	if err != nil {
		return nil, err
	}
	scale := ComputeScale(pixelsPerEm)
	if !hinting {
		return unhintedGlyph(f.font, outline, scale)
	}
	h, err := f.hinterAt(scale)
	if err != nil {
		return nil, err
	}
	pts, err := h.Hint(outline, nil)
	if err != nil {
		return nil, err
	}
	return newGlyph(outline, pts)
}

// unhintedGlyph scales an outline's FUnit coordinates to pixels without
// running any bytecode, for callers that asked for Hinting: false.
func unhintedGlyph(font *sfnt.Font, outline *sfnt.Outline, scale fixed.Int26Dot6) (*Glyph, error) {
	upem := int64(font.UnitsPerEm())
	pts := make([]hint.Point, len(outline.Points))
	for i, p := range outline.Points {
		x := fixed.Int26Dot6((int64(p.X)*int64(scale) + upem/2) / upem)
		y := fixed.Int26Dot6((int64(p.Y)*int64(scale) + upem/2) / upem)
		onCurve := i >= len(outline.Points)-4 || p.Kind == sfnt.OnCurve
		pts[i] = hint.Point{X: x, Y: y, OnCurve: onCurve}
	}
	return newGlyph(outline, pts)
}

var errCubicUnsupported = ttferror.New(ttferror.UnsupportedFeature, "cubic (PostScript-style) contour points are not supported")
