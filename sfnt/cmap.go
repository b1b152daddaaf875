// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "github.com/vectorfont/ttf/ttferror"

// cmapTable is the single, already-selected character-to-glyph subtable.
// Parsing an sfnt's cmap means choosing one winning (platformID,
// encodingID) pair out of possibly many encoding records and decoding only
// that subtable; the rest are discarded, matching how a rasterizer only
// ever needs one Unicode mapping per face.
type cmapTable struct {
	format  int
	// format 0
	byteTable [256]byte
	// format 4
	segCount                                 int
	endCode, startCode, idDelta, idRangeBase  []uint16
	glyphIDs                                  []uint16
	// format 6
	firstCode, entryCount int
	glyphIDArray          []uint16
	// format 12
	groups []cmapGroup
}

type cmapGroup struct {
	startCharCode, endCharCode uint32
	startGlyphID               uint32
}

// encoding record priority: (platform, encoding) pairs, most preferred
// first. 3,10 is Windows UCS-4; 3,1 is Windows BMP; 0,* is any Unicode
// platform encoding; 3,0 is Windows Symbol, tried last since its codepoints
// are in the PUA rather than true Unicode.
var cmapPriority = [][2]uint16{
	{3, 10},
	{3, 1},
	{0, 4},
	{0, 6},
	{0, 3},
	{0, 2},
	{0, 1},
	{0, 0},
	{3, 0},
}

func parseCmap(r *reader) (*cmapTable, error) {
	if _, err := r.u16(); err != nil { // version
		return nil, err
	}
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	type record struct {
		platform, encoding uint16
		offset             int
	}
	records := make([]record, n)
	for i := range records {
		plat, err := r.u16()
		if err != nil {
			return nil, err
		}
		enc, err := r.u16()
		if err != nil {
			return nil, err
		}
		off, err := r.u32()
		if err != nil {
			return nil, err
		}
		records[i] = record{plat, enc, int(off)}
	}

	best := -1
	bestRank := len(cmapPriority)
	for i, rec := range records {
		for rank, want := range cmapPriority {
			if want[0] == rec.platform && want[1] == rec.encoding && rank < bestRank {
				best, bestRank = i, rank
			}
		}
	}
	if best < 0 {
		return nil, nil
	}
	off := records[best].offset
	if err := r.seek(off); err != nil {
		return nil, err
	}
	format, err := r.u16()
	if err != nil {
		return nil, err
	}
	switch format {
	case 0:
		return parseCmapFormat0(r)
	case 4:
		return parseCmapFormat4(r)
	case 6:
		return parseCmapFormat6(r)
	case 12:
		return parseCmapFormat12(r)
	default:
		return nil, ttferror.New(ttferror.UnsupportedFeature, "cmap format %d", format)
	}
}

func parseCmapFormat0(r *reader) (*cmapTable, error) {
	if err := r.skip(4); err != nil { // length, language
		return nil, err
	}
	t := &cmapTable{format: 0}
	for i := range t.byteTable {
		b, err := r.u8()
		if err != nil {
			return nil, err
		}
		t.byteTable[i] = b
	}
	return t, nil
}

func parseCmapFormat4(r *reader) (*cmapTable, error) {
	if _, err := r.u16(); err != nil { // length
		return nil, err
	}
	if _, err := r.u16(); err != nil { // language
		return nil, err
	}
	segCountX2, err := r.u16()
	if err != nil {
		return nil, err
	}
	segCount := int(segCountX2 / 2)
	if err := r.skip(6); err != nil { // searchRange, entrySelector, rangeShift
		return nil, err
	}
	t := &cmapTable{format: 4, segCount: segCount}
	t.endCode = make([]uint16, segCount)
	for i := range t.endCode {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		t.endCode[i] = v
	}
	if _, err := r.u16(); err != nil { // reservedPad
		return nil, err
	}
	t.startCode = make([]uint16, segCount)
	for i := range t.startCode {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		t.startCode[i] = v
	}
	t.idDelta = make([]uint16, segCount)
	for i := range t.idDelta {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		t.idDelta[i] = v
	}
	idRangeOffsetBase := r.offset()
	t.idRangeBase = make([]uint16, segCount)
	rangeOffsets := make([]uint16, segCount)
	for i := range rangeOffsets {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		rangeOffsets[i] = v
		t.idRangeBase[i] = v
	}
	glyphIDArrayStart := idRangeOffsetBase + 2*segCount
	glyphIDArrayBytes := r.b[glyphIDArrayStart:]
	t.glyphIDs = make([]uint16, len(glyphIDArrayBytes)/2)
	for i := range t.glyphIDs {
		t.glyphIDs[i] = u16At(glyphIDArrayBytes, 2*i)
	}
	// idRangeBase[i] is stored as a byte offset from its own slot; convert
	// to an index into glyphIDs relative to the start of that array so
	// lookup doesn't need to re-derive per-segment offsets later.
	for i := range t.idRangeBase {
		if rangeOffsets[i] == 0 {
			t.idRangeBase[i] = 0xFFFF // sentinel: use idDelta directly
			continue
		}
		segSlot := idRangeOffsetBase + 2*i
		glyphByteOffset := segSlot + int(rangeOffsets[i])
		t.idRangeBase[i] = uint16((glyphByteOffset - glyphIDArrayStart) / 2)
	}
	return t, nil
}

func parseCmapFormat6(r *reader) (*cmapTable, error) {
	if _, err := r.u16(); err != nil { // length
		return nil, err
	}
	if _, err := r.u16(); err != nil { // language
		return nil, err
	}
	first, err := r.u16()
	if err != nil {
		return nil, err
	}
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	t := &cmapTable{format: 6, firstCode: int(first), entryCount: int(count)}
	t.glyphIDArray = make([]uint16, count)
	for i := range t.glyphIDArray {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		t.glyphIDArray[i] = v
	}
	return t, nil
}

func parseCmapFormat12(r *reader) (*cmapTable, error) {
	if _, err := r.u16(); err != nil { // reserved
		return nil, err
	}
	if _, err := r.u32(); err != nil { // length
		return nil, err
	}
	if _, err := r.u32(); err != nil { // language
		return nil, err
	}
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	t := &cmapTable{format: 12, groups: make([]cmapGroup, n)}
	for i := range t.groups {
		start, err := r.u32()
		if err != nil {
			return nil, err
		}
		end, err := r.u32()
		if err != nil {
			return nil, err
		}
		gid, err := r.u32()
		if err != nil {
			return nil, err
		}
		t.groups[i] = cmapGroup{start, end, gid}
	}
	return t, nil
}

// lookup returns the glyph index for rune c, or 0 (.notdef) if unmapped.
func (t *cmapTable) lookup(c rune) Index {
	if t == nil {
		return 0
	}
	switch t.format {
	case 0:
		if c < 0 || c > 255 {
			return 0
		}
		return Index(t.byteTable[c])
	case 4:
		if c > 0xFFFF {
			return 0
		}
		cc := uint16(c)
		for i := 0; i < t.segCount; i++ {
			if cc > t.endCode[i] {
				continue
			}
			if cc < t.startCode[i] {
				return 0
			}
			if t.idRangeBase[i] == 0xFFFF {
				return Index(cc + t.idDelta[i])
			}
			idx := int(t.idRangeBase[i]) + int(cc-t.startCode[i])
			if idx < 0 || idx >= len(t.glyphIDs) {
				return 0
			}
			g := t.glyphIDs[idx]
			if g == 0 {
				return 0
			}
			return Index(g + t.idDelta[i])
		}
		return 0
	case 6:
		i := int(c) - t.firstCode
		if i < 0 || i >= t.entryCount {
			return 0
		}
		return Index(t.glyphIDArray[i])
	case 12:
		cc := uint32(c)
		lo, hi := 0, len(t.groups)
		for lo < hi {
			mid := (lo + hi) / 2
			g := t.groups[mid]
			switch {
			case cc < g.startCharCode:
				hi = mid
			case cc > g.endCharCode:
				lo = mid + 1
			default:
				return Index(g.startGlyphID + (cc - g.startCharCode))
			}
		}
		return 0
	default:
		return 0
	}
}
