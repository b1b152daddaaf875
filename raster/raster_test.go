// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"testing"

	"github.com/vectorfont/ttf/fixed"
)

// bufSurface is a minimal Surface backed by a byte slice, for tests that
// want to inspect the rasterized coverage directly.
type bufSurface struct {
	w, h int
	pix  []uint8
}

func newBufSurface(w, h int) *bufSurface { return &bufSurface{w: w, h: h, pix: make([]uint8, w*h)} }

func (s *bufSurface) Width() int  { return s.w }
func (s *bufSurface) Height() int { return s.h }
func (s *bufSurface) SetCoverage(x, y int, coverage uint8) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.pix[y*s.w+x] = coverage
}

func (s *bufSurface) sum() int {
	total := 0
	for _, v := range s.pix {
		total += int(v)
	}
	return total
}

func pt(x, y int) (fixed.Int24Dot8, fixed.Int24Dot8) {
	return fixed.Int24Dot8(x << 8), fixed.Int24Dot8(y << 8)
}

// TestFilledRectangleCoverage exercises §8's rasterizer property: total
// coverage summed over the surface equals the area in pixels, within
// rounding.
func TestFilledRectangleCoverage(t *testing.T) {
	const w, h = 20, 20
	r := NewRasterizer(w, h)
	x0, y0 := pt(4, 4)
	x1, y1 := pt(16, 4)
	x2, y2 := pt(16, 12)
	x3, y3 := pt(4, 12)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.LineTo(x2, y2)
	r.LineTo(x3, y3)

	s := newBufSurface(w, h)
	r.Rasterize(s, 0, 0)

	wantArea := (16 - 4) * (12 - 4) * 255
	gotArea := s.sum()
	if diff := gotArea - wantArea; diff < -255 || diff > 255 {
		t.Errorf("total coverage = %d, want ~%d (area in pixels * 255), diff %d", gotArea, wantArea, diff)
	}
}

// TestReversedContourSameMagnitude exercises §8's property that
// reversing a contour's winding does not change the absolute coverage
// (the non-zero rule abs-clamps the sign), only a separate, independently
// wound contour changes the result.
func TestReversedContourSameMagnitude(t *testing.T) {
	const w, h = 20, 20
	forward := NewRasterizer(w, h)
	x0, y0 := pt(4, 4)
	x1, y1 := pt(16, 4)
	x2, y2 := pt(16, 12)
	x3, y3 := pt(4, 12)
	forward.MoveTo(x0, y0)
	forward.LineTo(x1, y1)
	forward.LineTo(x2, y2)
	forward.LineTo(x3, y3)
	sf := newBufSurface(w, h)
	forward.Rasterize(sf, 0, 0)

	reversed := NewRasterizer(w, h)
	reversed.MoveTo(x0, y0)
	reversed.LineTo(x3, y3)
	reversed.LineTo(x2, y2)
	reversed.LineTo(x1, y1)
	sr := newBufSurface(w, h)
	reversed.Rasterize(sr, 0, 0)

	if sf.sum() != sr.sum() {
		t.Errorf("reversed winding changed total coverage: forward=%d reversed=%d", sf.sum(), sr.sum())
	}
}

// TestDegenerateContourIsBlank exercises §8's zero-area-contour property.
func TestDegenerateContourIsBlank(t *testing.T) {
	const w, h = 10, 10
	r := NewRasterizer(w, h)
	x, y := pt(5, 5)
	r.MoveTo(x, y)
	r.LineTo(x, y)
	r.LineTo(x, y)
	s := newBufSurface(w, h)
	r.Rasterize(s, 0, 0)
	if sum := s.sum(); sum != 0 {
		t.Errorf("degenerate contour produced non-zero coverage sum %d", sum)
	}
}

// TestQuadraticCurveStaysWithinBounds exercises that a curved contour,
// like a straight one, is confined to the pixels its bounding box covers.
func TestQuadraticCurveStaysWithinBounds(t *testing.T) {
	const w, h = 20, 20
	r := NewRasterizer(w, h)
	x0, y0 := pt(2, 10)
	cx, cy := pt(10, 2)
	x1, y1 := pt(18, 10)
	x2, y2 := pt(10, 18)
	r.MoveTo(x0, y0)
	r.QuadraticCurveTo(cx, cy, x1, y1)
	r.LineTo(x2, y2)
	s := newBufSurface(w, h)
	r.Rasterize(s, 0, 0)
	if sum := s.sum(); sum == 0 {
		t.Errorf("expected non-zero coverage for a filled curved contour")
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x < 2 || x >= 18 || y < 2 || y >= 18) && s.pix[y*w+x] != 0 {
				t.Errorf("pixel (%d, %d) outside the contour's bounding box has coverage %d", x, y, s.pix[y*w+x])
			}
		}
	}
}
