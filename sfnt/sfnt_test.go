// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildMinimalSfnt hand-assembles the smallest font this package will fully
// decode: two glyphs (.notdef and one more), both with an empty outline, so
// the test exercises the table directory, head/maxp/hhea/hmtx/OS2/loca
// plumbing without needing a real glyf entry.
func buildMinimalSfnt(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 52)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm
	binary.BigEndian.PutUint16(head[50:], locaFormatShort)

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint32(maxp[0:], 0x00005000)
	binary.BigEndian.PutUint16(maxp[4:], 2) // numGlyphs

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint32(hhea[0:], 0x00010000)
	binary.BigEndian.PutUint16(hhea[4:], 800)                      // ascender
	binary.BigEndian.PutUint16(hhea[6:], uint16(int16(-200)))      // descender
	binary.BigEndian.PutUint16(hhea[34:], 2)                       // numberOfHMetrics

	hmtx := make([]byte, 8)
	binary.BigEndian.PutUint16(hmtx[0:], 500) // glyph 0 advance
	binary.BigEndian.PutUint16(hmtx[2:], 0)   // glyph 0 lsb
	binary.BigEndian.PutUint16(hmtx[4:], 600) // glyph 1 advance
	binary.BigEndian.PutUint16(hmtx[6:], 10)  // glyph 1 lsb

	os2 := make([]byte, 90)
	binary.BigEndian.PutUint16(os2[4:], 400)  // weightClass
	binary.BigEndian.PutUint16(os2[6:], 5)    // stretchClass
	binary.BigEndian.PutUint16(os2[26:], 50)  // strikeoutSize
	binary.BigEndian.PutUint16(os2[28:], 300) // strikeoutPosition
	binary.BigEndian.PutUint16(os2[62:], 0)   // fsSelection, no useTypoMetrics
	binary.BigEndian.PutUint16(os2[68:], 800) // typoAscender
	binary.BigEndian.PutUint16(os2[70:], uint16(int16(-200)))
	binary.BigEndian.PutUint16(os2[72:], 90) // typoLineGap
	binary.BigEndian.PutUint16(os2[74:], 800) // winAscent
	binary.BigEndian.PutUint16(os2[76:], 200) // winDescent
	binary.BigEndian.PutUint16(os2[86:], 500) // xHeight
	binary.BigEndian.PutUint16(os2[88:], 700) // capHeight

	loca := make([]byte, 6) // 3 word offsets, all zero: two empty glyphs
	var glyf []byte

	type entry struct {
		tag  string
		data []byte
	}
	entries := []entry{
		{"head", head},
		{"maxp", maxp},
		{"hhea", hhea},
		{"hmtx", hmtx},
		{"OS/2", os2},
		{"loca", loca},
		{"glyf", glyf},
	}

	const headerSize = 12
	const recordSize = 16
	off := headerSize + recordSize*len(entries)

	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(magicTrueType))
	binary.Write(&buf, binary.BigEndian, uint16(len(entries)))
	binary.Write(&buf, binary.BigEndian, uint16(0)) // searchRange
	binary.Write(&buf, binary.BigEndian, uint16(0)) // entrySelector
	binary.Write(&buf, binary.BigEndian, uint16(0)) // rangeShift

	offsets := make([]int, len(entries))
	for i, e := range entries {
		offsets[i] = off
		off += len(e.data)
	}
	for i, e := range entries {
		buf.WriteString(e.tag)
		binary.Write(&buf, binary.BigEndian, uint32(0)) // checksum, unchecked
		binary.Write(&buf, binary.BigEndian, uint32(offsets[i]))
		binary.Write(&buf, binary.BigEndian, uint32(len(e.data)))
	}
	for _, e := range entries {
		buf.Write(e.data)
	}
	return buf.Bytes()
}

func TestParseAndReadMinimalFace(t *testing.T) {
	data := buildMinimalSfnt(t)

	col, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := col.FaceCount(), 1; got != want {
		t.Fatalf("FaceCount() = %d, want %d", got, want)
	}

	f, err := col.ReadFace(0)
	if err != nil {
		t.Fatalf("ReadFace(0): %v", err)
	}
	if got, want := f.UnitsPerEm(), 1000; got != want {
		t.Errorf("UnitsPerEm() = %d, want %d", got, want)
	}
	if got, want := f.GlyphCount(), 2; got != want {
		t.Errorf("GlyphCount() = %d, want %d", got, want)
	}
	if got, want := f.weightClass, uint16(400); got != want {
		t.Errorf("weightClass = %d, want %d", got, want)
	}

	o, err := f.Glyph(Index(1))
	if err != nil {
		t.Fatalf("Glyph(1): %v", err)
	}
	if got := o.NumContours(); got != 0 {
		t.Errorf("empty glyph NumContours() = %d, want 0", got)
	}
	if got, want := len(o.Points), 4; got != want {
		t.Fatalf("empty glyph Points = %d, want 4 (phantom only)", got)
	}
}

func TestReadFaceOutOfRange(t *testing.T) {
	data := buildMinimalSfnt(t)
	col, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := col.ReadFace(1); err == nil {
		t.Fatal("ReadFace(1) on a single-face file: expected an error, got nil")
	}
}

func TestParseUnrecognizedMagic(t *testing.T) {
	if _, err := Parse([]byte{0xDE, 0xAD, 0xBE, 0xEF}); err == nil {
		t.Fatal("Parse of garbage magic: expected an error, got nil")
	}
}

func TestMissingRequiredTable(t *testing.T) {
	// A directory with zero tables is missing head, maxp, etc.
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(magicTrueType))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))

	col, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := col.ReadFace(0); err == nil {
		t.Fatal("ReadFace on a directory with no tables: expected MissingRequiredTable, got nil")
	}
}
