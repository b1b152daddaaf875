// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// Metrics bundles the face-wide metrics a caller needs to lay out a line of
// text without decoding any individual glyph.
type Metrics struct {
	UnitsPerEm      int
	Ascent, Descent int16
	LineHeight      int16
	XHeight, CapHeight int16
	UnderlineSize, UnderlinePosition int16
	StrikeoutSize, StrikeoutPosition int16
	IsFixedPitch    bool
}

// Metrics returns the face's derived line and glyph metrics.
func (f *Font) Metrics() Metrics {
	return Metrics{
		UnitsPerEm:         f.unitsPerEm,
		Ascent:             f.cellAscent,
		Descent:            f.cellDescent,
		LineHeight:         f.lineHeight,
		XHeight:            f.xHeight,
		CapHeight:          f.capHeight,
		UnderlineSize:      f.underlineSize,
		UnderlinePosition:  f.underlinePosition,
		StrikeoutSize:      f.strikeoutSize,
		StrikeoutPosition:  f.strikeoutPosition,
		IsFixedPitch:       f.isFixedPitch,
	}
}

// Index looks up the glyph index mapped to rune c by the face's cmap,
// returning 0 (.notdef) if c is unmapped or the face carries no cmap.
func (f *Font) Index(c rune) Index {
	return f.cmap.lookup(c)
}

// HorizontalMetrics returns the advance width and left side bearing for
// glyph i, in FUnits.
func (f *Font) HorizontalMetrics(i Index) HMetric {
	return f.hMetricFor(i)
}

// VerticalMetrics returns the advance height and top side bearing for
// glyph i, in FUnits, and whether the face actually carries vertical
// metrics (as opposed to the synthesized fallback used internally for
// phantom points).
func (f *Font) VerticalMetrics(i Index) (VMetric, bool) {
	return f.vMetricFor(i)
}

// Kerning returns the horizontal kerning adjustment, in FUnits, to apply
// between left and right when they appear adjacent in that order. It is 0
// if the face has no kern table or no entry for the pair.
func (f *Font) Kerning(left, right Index) int16 {
	return f.kern.lookup(left, right)
}

// ControlValueTable returns the font's cvt table, one signed FUnit value
// per entry, shared (never copied) across every Hinter built on this Font.
func (f *Font) ControlValueTable() []int16 { return f.cvt }

// FontProgram returns the fpgm bytecode, run once per scale change to
// define the face's shared functions.
func (f *Font) FontProgram() []byte { return f.fpgm }

// ControlValueProgram returns the prep bytecode, run once per scale change
// after FontProgram to set up CVT-dependent state.
func (f *Font) ControlValueProgram() []byte { return f.prep }

// MaxStackElements, MaxStorage, MaxFunctionDefs, MaxTwilightPoints and
// MaxComponentDepth report the maxp-derived resource limits the bytecode
// interpreter must honor.
func (f *Font) MaxStackElements() int  { return f.maxStackElements }
func (f *Font) MaxStorage() int        { return f.maxStorage }
func (f *Font) MaxFunctionDefs() int   { return f.maxFunctionDefs }
func (f *Font) MaxTwilightPoints() int { return f.maxTwilightPoints }
func (f *Font) MaxComponentDepth() int { return f.maxComponentDepth }
