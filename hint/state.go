// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

import ttfixed "github.com/vectorfont/ttf/fixed"

// vector is a 2.14 fixed-point unit vector, used for the interpreter's
// three directional vectors: projection, freedom and dual-projection.
type vector struct {
	x, y int32 // 2.14: 1 unit of length == 1<<14
}

func (v vector) dot(w vector) int32 {
	// Both operands are 2.14; the product is 4.28, shift back to 2.14.
	return int32((int64(v.x)*int64(w.x) + int64(v.y)*int64(w.y)) >> 14)
}

var axisX = vector{1 << 14, 0}
var axisY = vector{0, 1 << 14}

const (
	zoneTwilight = 0
	zoneGlyph    = 1
)

// zonePoint is one point in a zone: its current (possibly hinted) position,
// its scaled-but-unhinted original position, and whether x/y were touched
// by an instruction that moved it directly (as opposed to only being
// shifted by IUP interpolation).
type zonePoint struct {
	X, Y           ttfixed.Int26Dot6
	OrigX, OrigY   ttfixed.Int26Dot6
	TouchedX, TouchedY bool
}

// zone is one of the interpreter's two point spaces: the twilight zone
// (zone 0), used for auxiliary reference points that don't belong to any
// real contour, and the glyph zone (zone 1), the points of the glyph
// currently being hinted.
type zone struct {
	points      []zonePoint
	contourEnds []int
}

func (z *zone) pointOf(c int) (start, end int) {
	if c == 0 {
		return 0, z.contourEnds[0]
	}
	return z.contourEnds[c-1] + 1, z.contourEnds[c]
}

// roundState selects one of TrueType's rounding strategies, set by
// RTHG/RTG/RTDG/RDTG/RUTG/ROFF/SROUND/S45ROUND.
type roundState int

const (
	roundHalfGrid roundState = iota
	roundGrid
	roundDoubleGrid
	roundDownToGrid
	roundUpToGrid
	roundOff
	roundSuper
	roundSuper45
)

// graphicsState is the full TrueType interpreter graphics state (§4.7).
// The state fpgm/prep leave behind is kept as defaultGS, and each glyph
// program starts from a copy of it (with rp and zp reset), so that prep's
// configuration carries into every subsequent glyph.
type graphicsState struct {
	pv, fv, dv vector
	rp         [3]int
	zp         [3]int

	controlValueCutIn ttfixed.Int26Dot6
	singleWidthCutIn  ttfixed.Int26Dot6
	singleWidthValue  ttfixed.Int26Dot6
	deltaBase         int32
	deltaShift        int32
	minimumDistance   ttfixed.Int26Dot6
	loop              int32
	round             roundState
	roundPeriod, roundPhase, roundThreshold ttfixed.Int26Dot6
	autoFlip   bool
	scanControl bool
	scanType   int32
	freezePointLocations bool
}

// globalDefaultGS is the graphics state every Hinter starts from before
// running fpgm for the first time on a new font, matching the defaults
// mandated by the TrueType instruction set (§4.7).
var globalDefaultGS = graphicsState{
	pv: axisX, fv: axisX, dv: axisX,
	zp:                [3]int{1, 1, 1},
	controlValueCutIn: 68, // 17/16 pixel, in 26.6
	singleWidthCutIn:  0,
	singleWidthValue:  0,
	deltaBase:         9,
	deltaShift:        3,
	minimumDistance:   1 << 6, // 1 pixel
	loop:              1,
	round:             roundGrid,
	roundPeriod:       1 << 6,
	roundPhase:        0,
	roundThreshold:    1 << 5,
	autoFlip:          true,
	scanControl:       false,
	scanType:          0,
}
