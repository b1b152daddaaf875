// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/vectorfont/ttf/fixed"
)

func TestComputePixelSize(t *testing.T) {
	for _, tc := range []struct {
		points, dpi, want float64
	}{
		{12, 72, 12},
		{12, 96, 16},
		{72, 72, 72},
	} {
		if got := ComputePixelSize(tc.points, tc.dpi); got != tc.want {
			t.Errorf("ComputePixelSize(%v, %v) = %v, want %v", tc.points, tc.dpi, got, tc.want)
		}
	}
}

func TestComputeScale(t *testing.T) {
	if got, want := ComputeScale(12), fixed.Int26Dot6(12<<6); got != want {
		t.Errorf("ComputeScale(12) = %v, want %v", got, want)
	}
}

// buildMinimalSfntForFaceTest hand-assembles the smallest font this
// package's Face plumbing will fully decode: two glyphs, both empty, so
// the test exercises glyph lookup and metrics without a real glyf entry.
func buildMinimalSfntForFaceTest(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 52)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint32(maxp[0:], 0x00005000)
	binary.BigEndian.PutUint16(maxp[4:], 2) // numGlyphs

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint32(hhea[0:], 0x00010000)
	binary.BigEndian.PutUint16(hhea[4:], 800)
	binary.BigEndian.PutUint16(hhea[6:], uint16(int16(-200)))
	binary.BigEndian.PutUint16(hhea[34:], 2)

	hmtx := make([]byte, 8)
	binary.BigEndian.PutUint16(hmtx[0:], 500)
	binary.BigEndian.PutUint16(hmtx[2:], 0)
	binary.BigEndian.PutUint16(hmtx[4:], 600)
	binary.BigEndian.PutUint16(hmtx[6:], 10)

	os2 := make([]byte, 90)
	binary.BigEndian.PutUint16(os2[74:], 800) // winAscent
	binary.BigEndian.PutUint16(os2[76:], 200) // winDescent

	loca := make([]byte, 6)
	var glyf []byte

	type entry struct {
		tag  string
		data []byte
	}
	entries := []entry{
		{"head", head}, {"maxp", maxp}, {"hhea", hhea}, {"hmtx", hmtx},
		{"OS/2", os2}, {"loca", loca}, {"glyf", glyf},
	}
	const headerSize, recordSize = 12, 16
	off := headerSize + recordSize*len(entries)

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(0x00010000)) // sfnt version 1.0
	binary.Write(&buf, binary.BigEndian, uint16(len(entries)))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))

	offsets := make([]int, len(entries))
	for i, e := range entries {
		offsets[i] = off
		off += len(e.data)
	}
	for i, e := range entries {
		buf.WriteString(e.tag)
		binary.Write(&buf, binary.BigEndian, uint32(0))
		binary.Write(&buf, binary.BigEndian, uint32(offsets[i]))
		binary.Write(&buf, binary.BigEndian, uint32(len(e.data)))
	}
	for _, e := range entries {
		buf.Write(e.data)
	}
	return buf.Bytes()
}

func TestParseFaceAndGetEmptyGlyph(t *testing.T) {
	data := buildMinimalSfntForFaceTest(t)
	f, err := ParseFace(data)
	if err != nil {
		t.Fatalf("ParseFace: %v", err)
	}
	if got, want := f.UnitsPerEm(), 1000; got != want {
		t.Errorf("UnitsPerEm() = %d, want %d", got, want)
	}
	if got, want := f.GlyphCount(), 2; got != want {
		t.Errorf("GlyphCount() = %d, want %d", got, want)
	}

	g, err := f.GetGlyph(1, 12, false)
	if err != nil {
		t.Fatalf("GetGlyph(1, 12, false): %v", err)
	}
	if got, want := g.RenderWidth(), 0; got != want {
		t.Errorf("empty glyph RenderWidth() = %d, want %d", got, want)
	}
	if got, want := g.RenderHeight(), 0; got != want {
		t.Errorf("empty glyph RenderHeight() = %d, want %d", got, want)
	}
	_, advance := g.HorizontalMetrics()
	if advance <= 0 {
		t.Errorf("empty glyph advance = %v, want > 0", advance)
	}
}

func TestGetFaceMetricsScalesWithSize(t *testing.T) {
	data := buildMinimalSfntForFaceTest(t)
	f, err := ParseFace(data)
	if err != nil {
		t.Fatalf("ParseFace: %v", err)
	}
	at12 := f.GetFaceMetrics(12)
	at24 := f.GetFaceMetrics(24)
	if at24.Ascent <= at12.Ascent {
		t.Errorf("Ascent at 24ppem (%v) should exceed Ascent at 12ppem (%v)", at24.Ascent, at12.Ascent)
	}
}
