// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "github.com/vectorfont/ttf/ttferror"

const (
	locaFormatShort = 0
	locaFormatLong  = 1
)

// fsSelection bits, from the OS/2 table.
const (
	fsItalic          = 0x0001
	fsBold            = 0x0020
	fsRegular         = 0x0040
	fsUseTypoMetrics  = 0x0080
	fsWWS             = 0x0100
	fsOblique         = 0x0200
)

// Font is an immutable, fully decoded face. Every field here is produced
// once in buildFont; nothing in this struct is mutated afterwards, so a
// *Font may be shared freely across goroutines (though the Hinter and
// Rasterizer built on top of it may not be).
type Font struct {
	unitsPerEm int
	indexToLocFormat int

	// Horizontal line metrics (§4.3 derived face metrics).
	cellAscent, cellDescent, lineHeight int16
	xHeight, capHeight                  int16
	underlineSize, underlinePosition    int16
	strikeoutSize, strikeoutPosition    int16
	isFixedPitch                        bool
	integerPpem                         bool

	weightClass, stretchClass uint16
	fsSelection                uint16

	glyphCount int

	hMetrics []HMetric
	vMetrics []VMetric // nil if vhea/vmtx absent
	hasVMetrics bool

	// typographic ascender/descender, used to synthesize vMetrics and the
	// useTypoMetrics-driven cellAscent/cellDescent/lineHeight above.
	typoAscender, typoDescender, typoLineGap int16

	cmap *cmapTable
	kern *kernTable

	cvt  []int16
	fpgm []byte
	prep []byte

	loca []uint32 // glyphCount+1 byte offsets into glyf
	glyf []byte

	maxStackElements  int
	maxStorage        int
	maxFunctionDefs   int
	maxTwilightPoints int
	maxComponentDepth int

	// hhea's own ascender/descender/lineGap triple, retained only to feed
	// the non-useTypoMetrics branch of deriveMetrics.
	hheaAscender, hheaDescender, hheaLineGap int16

	familyName, subfamilyName, fullName string
}

// FamilyName, SubfamilyName and FullName return the face's name-table
// strings (e.g. "Open Sans", "Bold", "Open Sans Bold"), preferring a
// Windows-Unicode record over a Macintosh one. They are empty if the face
// carries no name table or none of its records decode.
func (f *Font) FamilyName() string    { return f.familyName }
func (f *Font) SubfamilyName() string { return f.subfamilyName }
func (f *Font) FullName() string      { return f.fullName }

// UnitsPerEm returns the size of the font's em square, in FUnits.
func (f *Font) UnitsPerEm() int { return f.unitsPerEm }

// GlyphCount returns the number of glyphs, including .notdef.
func (f *Font) GlyphCount() int { return f.glyphCount }

// IsFixedPitch reports whether every glyph has the same advance width.
func (f *Font) IsFixedPitch() bool { return f.isFixedPitch }

// scale multiplies a FUnit quantity by pixelsPerEm/unitsPerEm, matching the
// bytecode interpreter's single scaling point so that every table uses the
// same rounding.
func (f *Font) scale(funits int32, pixelsPerEm26dot6 int32) int32 {
	return int32((int64(funits)*int64(pixelsPerEm26dot6) + int64(f.unitsPerEm)/2) / int64(f.unitsPerEm))
}

func buildFont(data []byte, dir *directory) (*Font, error) {
	f := &Font{}

	headR, _, _, err := dir.seekTo(data, "head", true)
	if err != nil {
		return nil, err
	}
	if err := f.parseHead(headR); err != nil {
		return nil, err
	}

	maxpR, _, _, err := dir.seekTo(data, "maxp", true)
	if err != nil {
		return nil, err
	}
	if err := f.parseMaxp(maxpR); err != nil {
		return nil, err
	}

	hheaR, _, _, err := dir.seekTo(data, "hhea", true)
	if err != nil {
		return nil, err
	}
	hMetricCount, err := f.parseHhea(hheaR)
	if err != nil {
		return nil, err
	}

	hmtxR, hmtxLen, _, err := dir.seekTo(data, "hmtx", true)
	if err != nil {
		return nil, err
	}
	f.hMetrics, err = parseHMetrics(hmtxR, hmtxLen, hMetricCount, f.glyphCount)
	if err != nil {
		return nil, err
	}

	osR, _, hasOS2, err := dir.seekTo(data, "OS/2", true)
	if err != nil {
		return nil, err
	}
	if err := f.parseOS2(osR); err != nil {
		return nil, err
	}
	_ = hasOS2

	if vheaR, _, ok, err := dir.seekTo(data, "vhea", false); err != nil {
		return nil, err
	} else if ok {
		vMetricCount, err := f.parseVhea(vheaR)
		if err != nil {
			return nil, err
		}
		if vmtxR, vmtxLen, ok, err := dir.seekTo(data, "vmtx", false); err != nil {
			return nil, err
		} else if ok {
			f.vMetrics, err = parseVMetrics(vmtxR, vmtxLen, vMetricCount, f.glyphCount)
			if err != nil {
				return nil, err
			}
			f.hasVMetrics = true
		}
	}

	if postR, _, ok, err := dir.seekTo(data, "post", false); err != nil {
		return nil, err
	} else if ok {
		if err := f.parsePost(postR); err != nil {
			return nil, err
		}
	} else {
		f.synthesizeUnderline()
	}

	if cvtR, cvtLen, ok, err := dir.seekTo(data, "cvt ", false); err != nil {
		return nil, err
	} else if ok {
		f.cvt, err = parseCVT(cvtR, cvtLen)
		if err != nil {
			return nil, err
		}
	}

	f.fpgm = dir.raw(data, "fpgm")
	f.prep = dir.raw(data, "prep")

	locaR, locaLen, _, err := dir.seekTo(data, "loca", true)
	if err != nil {
		return nil, err
	}
	f.loca, err = parseLoca(locaR, locaLen, f.indexToLocFormat, f.glyphCount)
	if err != nil {
		return nil, err
	}
	f.glyf = dir.raw(data, "glyf")

	if cmapR, _, ok, err := dir.seekTo(data, "cmap", false); err != nil {
		return nil, err
	} else if ok {
		f.cmap, err = parseCmap(cmapR)
		if err != nil {
			return nil, err
		}
	}

	if kernR, kernLen, ok, err := dir.seekTo(data, "kern", false); err != nil {
		return nil, err
	} else if ok {
		f.kern, err = parseKern(kernR, kernLen)
		if err != nil {
			return nil, err
		}
	}

	if nameR, _, ok, err := dir.seekTo(data, "name", false); err != nil {
		return nil, err
	} else if ok {
		f.familyName, f.subfamilyName, f.fullName = parseName(nameR)
	}

	f.deriveMetrics()
	return f, nil
}

func (f *Font) parseHead(r *reader) error {
	if err := r.skip(16); err != nil { // version, revision, checksum adj, magic
		return err
	}
	if _, err := r.u16(); err != nil { // flags
		return err
	}
	upem, err := r.u16()
	if err != nil {
		return err
	}
	if upem == 0 {
		return ttferror.New(ttferror.InvalidTable, "unitsPerEm is zero")
	}
	f.unitsPerEm = int(upem)
	if err := r.skip(30); err != nil { // dates, bbox, style/direction/size hints
		return err
	}
	format, err := r.u16()
	if err != nil {
		return err
	}
	switch format {
	case 0:
		f.indexToLocFormat = locaFormatShort
	case 1:
		f.indexToLocFormat = locaFormatLong
	default:
		return ttferror.New(ttferror.InvalidTable, "bad indexToLocFormat %d", format)
	}
	return nil
}

func (f *Font) parseMaxp(r *reader) error {
	if err := r.skip(4); err != nil { // version
		return err
	}
	n, err := r.u16()
	if err != nil {
		return err
	}
	if n > maxGlyphs {
		return ttferror.New(ttferror.InvalidTable, "glyph count %d exceeds %d", n, maxGlyphs)
	}
	f.glyphCount = int(n)
	// The remaining maxp v1.0 fields (maxPoints..maxComponentDepth) are
	// optional in practice (some subset fonts ship a v0.5 maxp); read what
	// is present and leave conservative defaults otherwise.
	f.maxStackElements, f.maxStorage, f.maxFunctionDefs = 512, 64, 64
	f.maxTwilightPoints, f.maxComponentDepth = 16, maxCompositeRecurse
	if err := r.skip(10); err != nil { // maxPoints..maxZones
		return nil // v0.5 maxp: fine, defaults stand.
	}
	twilight, err := r.u16()
	if err != nil {
		return nil
	}
	f.maxTwilightPoints = int(twilight)
	storage, err := r.u16()
	if err != nil {
		return nil
	}
	f.maxStorage = int(storage)
	fdefs, err := r.u16()
	if err != nil {
		return nil
	}
	f.maxFunctionDefs = int(fdefs)
	if _, err := r.u16(); err != nil { // maxInstructionDefs
		return nil
	}
	stack, err := r.u16()
	if err != nil {
		return nil
	}
	f.maxStackElements = int(stack)
	return nil
}

func (f *Font) parseHhea(r *reader) (hMetricCount int, err error) {
	if err := r.skip(4); err != nil { // version
		return 0, err
	}
	asc, err := r.i16()
	if err != nil {
		return 0, err
	}
	desc, err := r.i16()
	if err != nil {
		return 0, err
	}
	gap, err := r.i16()
	if err != nil {
		return 0, err
	}
	f.hheaAscender, f.hheaDescender, f.hheaLineGap = asc, desc, gap
	if err := r.skip(24); err != nil { // advanceWidthMax..metricDataFormat
		return 0, err
	}
	n, err := r.u16()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (f *Font) parseVhea(r *reader) (vMetricCount int, err error) {
	if err := r.skip(34); err != nil {
		return 0, err
	}
	n, err := r.u16()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func parseHMetrics(r *reader, tableLen, metricCount, glyphCount int) ([]HMetric, error) {
	return parseMetrics(r, tableLen, metricCount, glyphCount)
}

func parseVMetrics(r *reader, tableLen, metricCount, glyphCount int) ([]VMetric, error) {
	hs, err := parseMetrics(r, tableLen, metricCount, glyphCount)
	if err != nil {
		return nil, err
	}
	vs := make([]VMetric, len(hs))
	for i, h := range hs {
		vs[i] = VMetric{AdvanceHeight: h.AdvanceWidth, TopSideBearing: h.LeftSideBearing}
	}
	return vs, nil
}

// parseMetrics decodes the dense (advance, bearing) pairs followed by the
// bearing-only tail that inherits the final advance, shared by hmtx/vmtx.
func parseMetrics(r *reader, tableLen, metricCount, glyphCount int) ([]HMetric, error) {
	if metricCount <= 0 || metricCount > glyphCount {
		return nil, ttferror.New(ttferror.InvalidTable, "bad metric count %d for %d glyphs", metricCount, glyphCount)
	}
	want := 4*metricCount + 2*(glyphCount-metricCount)
	if want != tableLen {
		return nil, ttferror.New(ttferror.InvalidTable, "metric table length %d, want %d", tableLen, want)
	}
	out := make([]HMetric, glyphCount)
	var lastAdvance uint16
	for i := 0; i < metricCount; i++ {
		adv, err := r.u16()
		if err != nil {
			return nil, err
		}
		sb, err := r.i16()
		if err != nil {
			return nil, err
		}
		out[i] = HMetric{AdvanceWidth: adv, LeftSideBearing: sb}
		lastAdvance = adv
	}
	for i := metricCount; i < glyphCount; i++ {
		sb, err := r.i16()
		if err != nil {
			return nil, err
		}
		out[i] = HMetric{AdvanceWidth: lastAdvance, LeftSideBearing: sb}
	}
	return out, nil
}

func (f *Font) parseOS2(r *reader) error {
	if err := r.skip(4); err != nil {
		return err
	}
	weight, err := r.u16()
	if err != nil {
		return err
	}
	stretch, err := r.u16()
	if err != nil {
		return err
	}
	f.weightClass, f.stretchClass = weight, stretch
	if err := r.skip(18); err != nil {
		return err
	}
	strikeSize, err := r.i16()
	if err != nil {
		return err
	}
	strikePos, err := r.i16()
	if err != nil {
		return err
	}
	f.strikeoutSize, f.strikeoutPosition = strikeSize, strikePos
	if err := r.skip(32); err != nil {
		return err
	}
	sel, err := r.u16()
	if err != nil {
		return err
	}
	f.fsSelection = sel
	if err := r.skip(4); err != nil {
		return err
	}
	typoAsc, err := r.i16()
	if err != nil {
		return err
	}
	typoDesc, err := r.i16()
	if err != nil {
		return err
	}
	typoGap, err := r.i16()
	if err != nil {
		return err
	}
	f.typoAscender, f.typoDescender, f.typoLineGap = typoAsc, typoDesc, typoGap
	winAsc, err := r.u16()
	if err != nil {
		return err
	}
	winDesc, err := r.u16()
	if err != nil {
		return err
	}
	f.cellAscent = int16(winAsc)
	f.cellDescent = int16(winDesc)
	if err := r.skip(8); err != nil {
		return err
	}
	xh, err := r.i16()
	if err != nil {
		return err
	}
	ch, err := r.i16()
	if err != nil {
		return err
	}
	f.xHeight, f.capHeight = xh, ch
	return nil
}

func (f *Font) parsePost(r *reader) error {
	if err := r.skip(8); err != nil {
		return err
	}
	ulPos, err := r.i16()
	if err != nil {
		return err
	}
	ulSize, err := r.i16()
	if err != nil {
		return err
	}
	f.underlinePosition, f.underlineSize = ulPos, ulSize
	fixedPitch, err := r.u32()
	if err != nil {
		return err
	}
	f.isFixedPitch = fixedPitch != 0
	f.strikeoutSize = f.underlineSize
	f.strikeoutPosition = int16(f.unitsPerEm / 3)
	return nil
}

func (f *Font) synthesizeUnderline() {
	upem := int16(f.unitsPerEm)
	f.underlineSize = (upem + 7) / 14
	f.underlinePosition = -(upem + 5) / 10
	f.strikeoutSize = f.underlineSize
	f.strikeoutPosition = upem / 3
}

func parseCVT(r *reader, tableLen int) ([]int16, error) {
	n := tableLen / 2
	out := make([]int16, n)
	for i := range out {
		v, err := r.i16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseLoca(r *reader, tableLen, format, glyphCount int) ([]uint32, error) {
	n := glyphCount + 1
	out := make([]uint32, n)
	if format == locaFormatShort {
		if tableLen < 2*n {
			return nil, ttferror.New(ttferror.InvalidTable, "short loca too small")
		}
		for i := range out {
			v, err := r.u16()
			if err != nil {
				return nil, err
			}
			out[i] = uint32(v) << 1
		}
	} else {
		if tableLen < 4*n {
			return nil, ttferror.New(ttferror.InvalidTable, "long loca too small")
		}
		for i := range out {
			v, err := r.u32()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
	}
	return out, nil
}

// deriveMetrics computes cellAscent/cellDescent/lineHeight per §4.3, after
// head/hhea/OS2 have all been parsed.
func (f *Font) deriveMetrics() {
	useTypo := f.fsSelection&fsUseTypoMetrics != 0
	hheaAscender, hheaDescender, hheaLineGap := f.hheaVertical()
	if useTypo {
		f.cellAscent = f.typoAscender + f.typoLineGap
		f.cellDescent = -f.typoDescender
		f.lineHeight = f.cellAscent + f.cellDescent
	} else {
		winAscent, winDescent := f.cellAscent, absI16(f.cellDescent)
		f.cellAscent = winAscent
		f.cellDescent = winDescent
		gap := hheaLineGap
		if gap < 0 {
			gap = 0
		}
		alt := gap + hheaAscender + absI16(hheaDescender)
		sum := f.cellAscent + f.cellDescent
		if alt > sum {
			f.lineHeight = alt
		} else {
			f.lineHeight = sum
		}
	}
}

func absI16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// hheaVertical returns the hhea ascender/descender/lineGap triple cached by
// parseHhea, used by the non-useTypoMetrics branch of deriveMetrics.
func (f *Font) hheaVertical() (ascender, descender, lineGap int16) {
	return f.hheaAscender, f.hheaDescender, f.hheaLineGap
}
