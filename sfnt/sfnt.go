// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package sfnt decodes the SFNT container shared by TrueType and OpenType
// fonts: the table directory, an optional TrueType Collection wrapper, and
// the head, maxp, hhea/hmtx, vhea/vmtx, OS/2, post, loca, glyf, cmap, kern,
// cvt, fpgm and prep tables. It also loads and composes glyph outlines,
// including composite-glyph recursion, and synthesizes the phantom points
// the bytecode interpreter needs.
//
// All numbers are measured in FUnits unless noted otherwise. To convert a
// FUnit quantity to pixels, multiply by pixelSize and divide by UnitsPerEm.
package sfnt

import "github.com/vectorfont/ttf/ttferror"

// Index is a font's glyph index. Index 0 is always the .notdef glyph.
type Index uint16

// Bounds is an inclusive-endpoint co-ordinate range, as stored directly in
// a glyf entry's header.
type Bounds struct {
	XMin, YMin, XMax, YMax int16
}

// HMetric holds one glyph's horizontal metrics.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// VMetric holds one glyph's vertical metrics.
type VMetric struct {
	AdvanceHeight  uint16
	TopSideBearing int16
}

const (
	magicTrueType       = 0x00010000
	magicAppleTrue      = 0x74727565 // "true"
	magicOpenTypeCFF    = 0x4F54544F // "OTTO"
	magicCollection     = 0x74746366 // "ttcf"
	maxCollectionFaces  = 64
	maxGlyphs           = 32767
	maxCompositeRecurse = 128
)

// tableRecord is one entry of an sfnt offset table.
type tableRecord struct {
	tag            string
	offset, length int
}

// directory is a parsed offset table: the set of tables available for one
// face, keyed by 4-byte tag.
type directory struct {
	tables map[string]tableRecord
}

// seekTo locates tag within the table directory. If the table is present it
// returns a reader positioned at its start and the table's byte length. If
// absent: when required, it returns MissingRequiredTable; otherwise it
// returns a nil reader and ok==false.
func (d *directory) seekTo(data []byte, tag string, required bool) (r *reader, length int, ok bool, err error) {
	rec, present := d.tables[tag]
	if !present || rec.length == 0 {
		if required {
			return nil, 0, false, ttferror.New(ttferror.MissingRequiredTable, "table %q", tag)
		}
		return nil, 0, false, nil
	}
	if rec.offset < 0 || rec.length < 0 || rec.offset+rec.length > len(data) {
		return nil, 0, false, ttferror.New(ttferror.TruncatedInput, "table %q out of range", tag)
	}
	return newReader(data[rec.offset : rec.offset+rec.length]), rec.length, true, nil
}

func (d *directory) raw(data []byte, tag string) []byte {
	rec, present := d.tables[tag]
	if !present || rec.length == 0 {
		return nil
	}
	return data[rec.offset : rec.offset+rec.length]
}

// Collection represents a parsed font file, which may hold one face (a bare
// .ttf/.otf) or several (a .ttc). The raw bytes are retained only long
// enough to build each Font; once ReadFace has returned, the Font owns
// copies (or immutable sub-slices) of everything it needs and the original
// byte stream may be discarded.
type Collection struct {
	data         []byte
	faceOffsets  []int
}

// Parse reads the SFNT directory (or TrueType Collection header) at the
// start of data and returns a Collection. It does not yet decode any
// per-face tables; call ReadFace for that.
func Parse(data []byte) (*Collection, error) {
	r := newReader(data)
	tag, err := r.u32raw()
	if err != nil {
		return nil, err
	}
	switch tag {
	case magicCollection:
		return parseCollectionHeader(data, r)
	case magicTrueType, magicAppleTrue, magicOpenTypeCFF:
		return &Collection{data: data, faceOffsets: []int{0}}, nil
	default:
		return nil, ttferror.New(ttferror.UnsupportedSfnt, "unrecognized magic 0x%08x", tag)
	}
}

// u32raw reads a big-endian uint32 and advances the reader, exactly like
// (*reader).u32; kept distinct only to read naturally at the very top of
// Parse before we know which path we're on.
func (r *reader) u32raw() (uint32, error) { return r.u32() }

func parseCollectionHeader(data []byte, r *reader) (*Collection, error) {
	if _, err := r.u32(); err != nil { // version
		return nil, err
	}
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxCollectionFaces {
		return nil, ttferror.New(ttferror.InvalidTable, "ttc face count %d exceeds %d", n, maxCollectionFaces)
	}
	offsets := make([]int, n)
	for i := range offsets {
		o, err := r.u32()
		if err != nil {
			return nil, err
		}
		offsets[i] = int(o)
	}
	return &Collection{data: data, faceOffsets: offsets}, nil
}

// FaceCount returns the number of faces available, 1 for a bare .ttf/.otf.
func (c *Collection) FaceCount() int { return len(c.faceOffsets) }

// ReadFace decodes every table for the face at index and returns an
// immutable Font ready for metrics and glyph lookups.
func (c *Collection) ReadFace(index int) (*Font, error) {
	if index < 0 || index >= len(c.faceOffsets) {
		return nil, ttferror.New(ttferror.InvalidTable, "face index %d out of range [0,%d)", index, len(c.faceOffsets))
	}
	off := c.faceOffsets[index]
	r := newReader(c.data)
	if err := r.seek(off); err != nil {
		return nil, err
	}
	tag, err := r.u32()
	if err != nil {
		return nil, err
	}
	switch tag {
	case magicTrueType, magicAppleTrue:
	case magicOpenTypeCFF:
		// Accepted at the directory level but CFF outlines are out of scope;
		// a face with a CFF table and no glyf table is rejected below, once
		// the table directory has been read.
	default:
		return nil, ttferror.New(ttferror.UnsupportedSfnt, "unrecognized face tag 0x%08x", tag)
	}
	numTables, err := r.u16()
	if err != nil {
		return nil, err
	}
	if err := r.skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, err
	}
	dir := &directory{tables: make(map[string]tableRecord, numTables)}
	for i := 0; i < int(numTables); i++ {
		tag, err := r.tag()
		if err != nil {
			return nil, err
		}
		if _, err := r.u32(); err != nil { // checksum
			return nil, err
		}
		tableOff, err := r.u32()
		if err != nil {
			return nil, err
		}
		tableLen, err := r.u32()
		if err != nil {
			return nil, err
		}
		dir.tables[tag] = tableRecord{tag: tag, offset: int(tableOff), length: int(tableLen)}
	}
	if _, isCFF := dir.tables["CFF "]; isCFF {
		if _, hasGlyf := dir.tables["glyf"]; !hasGlyf {
			return nil, ttferror.New(ttferror.UnsupportedSfnt, "CFF outlines are not supported")
		}
	}
	return buildFont(c.data, dir)
}
