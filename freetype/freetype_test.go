// Copyright 2012 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package freetype

import (
	"image"
	"image/color"
	"testing"

	"github.com/vectorfont/ttf"
)

func TestAlphaSurfaceRoundTrip(t *testing.T) {
	img := image.NewAlpha(image.Rect(2, 3, 10, 9))
	s := NewAlphaSurface(img)
	if got, want := s.Width(), 8; got != want {
		t.Errorf("Width() = %d, want %d", got, want)
	}
	if got, want := s.Height(), 6; got != want {
		t.Errorf("Height() = %d, want %d", got, want)
	}
	s.SetCoverage(1, 2, 0x80)
	if got, want := img.AlphaAt(3, 5), (color.Alpha{A: 0x80}); got != want {
		t.Errorf("AlphaAt(3, 5) = %v, want %v", got, want)
	}
}

func TestNewContextDefaultSize(t *testing.T) {
	c := NewContext()
	if got, want := c.ppem, ttf.ComputePixelSize(12, 72); got != want {
		t.Errorf("default ppem = %v, want %v (12pt at 72dpi)", got, want)
	}
}

func TestSetFontSizeScalesWithDPI(t *testing.T) {
	c := NewContext()
	c.SetFontSize(24, 144)
	if got, want := c.ppem, ttf.ComputePixelSize(24, 144); got != want {
		t.Errorf("ppem after SetFontSize(24, 144) = %v, want %v", got, want)
	}
	if got, want := c.ppem, ttf.ComputePixelSize(12, 72)*4; got != want {
		t.Errorf("24pt@144dpi = %v, want 4x 12pt@72dpi = %v", got, want)
	}
}

func TestDrawStringWithoutFontErrors(t *testing.T) {
	c := NewContext()
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c.SetDst(dst)
	c.SetSrc(image.Black)
	c.SetClip(dst.Bounds())
	if _, err := c.DrawString("x", 0, 0); err == nil {
		t.Fatal("DrawString with no font set: expected an error, got nil")
	}
}

func TestSetFontInvalidatesCache(t *testing.T) {
	c := NewContext()
	c.cache[0] = cacheEntry{valid: true}
	c.SetFont(nil)
	if c.cache[0].valid {
		t.Error("SetFont did not invalidate the glyph cache")
	}
}
