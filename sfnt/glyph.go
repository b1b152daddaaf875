// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "github.com/vectorfont/ttf/ttferror"

// PointKind distinguishes an on-curve point from the two kinds of
// off-curve control point a contour may carry. TrueType contours are
// quadratic; a cubic off-curve point can only arise from a malformed or
// foreign (e.g. PostScript-flavoured) glyf entry, and decodeSimpleGlyph
// never produces one — the kind exists so that callers that compose glyphs
// from multiple sources have a place to reject cubic input explicitly,
// per this library's outline of rejecting cubic curves at rasterization
// rather than silently approximating them.
type PointKind uint8

const (
	OnCurve PointKind = iota
	OffCurveQuadratic
	OffCurveCubic
)

// Point is one contour vertex or control point, in FUnits.
type Point struct {
	X, Y int32
	Kind PointKind
}

// Outline is a fully decoded and, for composites, fully composed glyph
// outline: every component has been flattened into one point list and one
// set of contour end indices. The four phantom points (left/right
// horizontal origin and advance, top/bottom vertical origin and advance)
// are appended after the real contour points, in that order, and are not
// counted in ContourEnds.
type Outline struct {
	Index        Index
	Points       []Point // real contour points, followed by 4 phantom points
	ContourEnds  []int   // last point index of each contour, into Points[:len(Points)-4]
	Instructions []byte
	Bounds       Bounds
	Composite    bool
}

// NumContours returns the number of contours in the outline, excluding the
// synthetic phantom points.
func (o *Outline) NumContours() int { return len(o.ContourEnds) }

// Phantom returns the four phantom points appended to Points: index 0 is
// the horizontal origin, 1 the horizontal advance, 2 the vertical origin,
// 3 the vertical advance.
func (o *Outline) Phantom() [4]Point {
	n := len(o.Points)
	var p [4]Point
	copy(p[:], o.Points[n-4:])
	return p
}

const (
	glyfFlagOnCurve      = 1 << 0
	glyfFlagXShort       = 1 << 1
	glyfFlagYShort       = 1 << 2
	glyfFlagRepeat       = 1 << 3
	glyfFlagXSame        = 1 << 4 // or positive X-short
	glyfFlagYSame        = 1 << 5 // or positive Y-short
	glyfFlagOverlapSimple = 1 << 6
)

const (
	compArgsAreWords     = 1 << 0
	compArgsAreXYValues  = 1 << 1
	compRoundXYToGrid    = 1 << 2
	compWeHaveScale      = 1 << 3
	compMoreComponents   = 1 << 5
	compWeHaveXYScale    = 1 << 6
	compWeHave2x2        = 1 << 7
	compWeHaveInstructions = 1 << 8
	compUseMyMetrics     = 1 << 9
	compOverlapCompound  = 1 << 10
	compScaledComponentOffset   = 1 << 11
	compUnscaledComponentOffset = 1 << 12
)

// glyphData returns the raw bytes of one glyf entry, or nil for an empty
// glyph (zero-length loca span, such as the space glyph).
func (f *Font) glyphData(i Index) ([]byte, error) {
	idx := int(i)
	if idx < 0 || idx+1 >= len(f.loca) {
		return nil, ttferror.New(ttferror.InvalidTable, "glyph index %d out of range", i)
	}
	start, end := f.loca[idx], f.loca[idx+1]
	if end <= start {
		return nil, nil
	}
	if int(end) > len(f.glyf) {
		return nil, ttferror.New(ttferror.TruncatedInput, "glyf entry for glyph %d out of range", i)
	}
	return f.glyf[start:end], nil
}

// Glyph decodes and fully composes the outline for glyph index i,
// recursing through composite components up to a depth of
// maxCompositeRecurse, and appends the four phantom points derived from
// this glyph's own horizontal and vertical metrics.
func (f *Font) Glyph(i Index) (*Outline, error) {
	o, err := f.loadGlyph(i, 0)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (f *Font) loadGlyph(i Index, depth int) (*Outline, error) {
	if depth > maxCompositeRecurse {
		return nil, ttferror.New(ttferror.InvalidTable, "composite glyph recursion exceeds %d", maxCompositeRecurse)
	}
	data, err := f.glyphData(i)
	if err != nil {
		return nil, err
	}
	hm := f.hMetricFor(i)
	if data == nil {
		phantom := f.basePhantomPoints(i, hm, 0)
		return &Outline{Index: i, Points: phantom[:]}, nil
	}
	r := newReader(data)
	numContours, err := r.i16()
	if err != nil {
		return nil, err
	}
	xMin, err := r.i16()
	if err != nil {
		return nil, err
	}
	yMin, err := r.i16()
	if err != nil {
		return nil, err
	}
	xMax, err := r.i16()
	if err != nil {
		return nil, err
	}
	yMax, err := r.i16()
	if err != nil {
		return nil, err
	}
	bounds := Bounds{xMin, yMin, xMax, yMax}
	phantom := f.basePhantomPoints(i, hm, int32(xMin))
	if numContours >= 0 {
		o, err := decodeSimpleGlyph(r, int(numContours))
		if err != nil {
			return nil, err
		}
		o.Index = i
		o.Bounds = bounds
		o.Points = append(o.Points, phantom[:]...)
		return o, nil
	}
	return f.decodeCompositeGlyph(r, i, bounds, phantom, depth)
}

func decodeSimpleGlyph(r *reader, numContours int) (*Outline, error) {
	if numContours < 0 {
		return nil, ttferror.New(ttferror.InvalidTable, "negative contour count")
	}
	ends := make([]int, numContours)
	for i := range ends {
		v, err := r.u16()
		if err != nil {
			return nil, err
		}
		ends[i] = int(v)
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = ends[numContours-1] + 1
	}
	if numPoints > maxGlyphs*8 {
		return nil, ttferror.New(ttferror.InvalidTable, "implausible point count %d", numPoints)
	}
	insLen, err := r.u16()
	if err != nil {
		return nil, err
	}
	instructions, err := r.bytes(int(insLen))
	if err != nil {
		return nil, err
	}
	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		flag, err := r.u8()
		if err != nil {
			return nil, err
		}
		flags[i] = flag
		i++
		if flag&glyfFlagRepeat != 0 {
			rep, err := r.u8()
			if err != nil {
				return nil, err
			}
			for j := 0; j < int(rep) && i < numPoints; j++ {
				flags[i] = flag
				i++
			}
		}
	}
	xs := make([]int32, numPoints)
	var x int32
	for i, flag := range flags {
		if flag&glyfFlagXShort != 0 {
			dx, err := r.u8()
			if err != nil {
				return nil, err
			}
			if flag&glyfFlagXSame != 0 {
				x += int32(dx)
			} else {
				x -= int32(dx)
			}
		} else if flag&glyfFlagXSame == 0 {
			dx, err := r.i16()
			if err != nil {
				return nil, err
			}
			x += int32(dx)
		}
		xs[i] = x
	}
	ys := make([]int32, numPoints)
	var y int32
	for i, flag := range flags {
		if flag&glyfFlagYShort != 0 {
			dy, err := r.u8()
			if err != nil {
				return nil, err
			}
			if flag&glyfFlagYSame != 0 {
				y += int32(dy)
			} else {
				y -= int32(dy)
			}
		} else if flag&glyfFlagYSame == 0 {
			dy, err := r.i16()
			if err != nil {
				return nil, err
			}
			y += int32(dy)
		}
		ys[i] = y
	}
	points := make([]Point, numPoints)
	for i := range points {
		kind := OffCurveQuadratic
		if flags[i]&glyfFlagOnCurve != 0 {
			kind = OnCurve
		}
		points[i] = Point{X: xs[i], Y: ys[i], Kind: kind}
	}
	return &Outline{Points: points, ContourEnds: ends, Instructions: instructions}, nil
}

func (f *Font) decodeCompositeGlyph(r *reader, self Index, bounds Bounds, phantom [4]Point, depth int) (*Outline, error) {
	out := &Outline{Index: self, Bounds: bounds, Composite: true}
	useMyMetricsPhantom := phantom
	haveInstructions := false
	var trailingInstructions []byte
	for {
		flags, err := r.u16()
		if err != nil {
			return nil, err
		}
		glyphIndex, err := r.u16()
		if err != nil {
			return nil, err
		}
		var arg1, arg2 int32
		if flags&compArgsAreWords != 0 {
			a, err := r.i16()
			if err != nil {
				return nil, err
			}
			b, err := r.i16()
			if err != nil {
				return nil, err
			}
			arg1, arg2 = int32(a), int32(b)
		} else {
			a, err := r.i8()
			if err != nil {
				return nil, err
			}
			b, err := r.i8()
			if err != nil {
				return nil, err
			}
			arg1, arg2 = int32(a), int32(b)
		}
		scale := [4]float64{1, 0, 0, 1}
		switch {
		case flags&compWeHave2x2 != 0:
			scale, err = read2x2(r)
		case flags&compWeHaveXYScale != 0:
			scale, err = readXYScale(r)
		case flags&compWeHaveScale != 0:
			scale, err = readUniformScale(r)
		}
		if err != nil {
			return nil, err
		}

		child, err := f.loadGlyph(Index(glyphIndex), depth+1)
		if err != nil {
			return nil, err
		}
		childPoints := child.Points[:len(child.Points)-4] // drop child's own phantoms

		var dx, dy float64
		if flags&compArgsAreXYValues != 0 {
			dx, dy = float64(arg1), float64(arg2)
			if flags&compScaledComponentOffset != 0 {
				// Offset is in unscaled glyph space; apply the component's
				// own transform to it like any other point.
				dx, dy = scale[0]*dx+scale[2]*dy, scale[1]*dx+scale[3]*dy
			}
			// UnscaledComponentOffset (and the Apple default when neither
			// flag is set) leaves dx,dy untransformed.
		} else {
			// Point-matching: arg1/arg2 are indices of an already-placed
			// parent point and an unplaced child point that must coincide.
			parentIdx, childIdx := int(arg1), int(arg2)
			if parentIdx >= 0 && parentIdx < len(out.Points) && childIdx >= 0 && childIdx < len(childPoints) {
				px, py := transformPoint(childPoints[childIdx], scale)
				dx = float64(out.Points[parentIdx].X) - px
				dy = float64(out.Points[parentIdx].Y) - py
			}
		}
		if flags&compRoundXYToGrid != 0 {
			dx = roundFloat(dx)
			dy = roundFloat(dy)
		}

		base := len(out.Points)
		for _, p := range childPoints {
			x, y := transformPoint(p, scale)
			out.Points = append(out.Points, Point{
				X:    int32(roundFloat(x + dx)),
				Y:    int32(roundFloat(y + dy)),
				Kind: p.Kind,
			})
		}
		for _, e := range child.ContourEnds {
			out.ContourEnds = append(out.ContourEnds, base+e)
		}
		if flags&compUseMyMetrics != 0 {
			useMyMetricsPhantom = child.Phantom()
		}
		if flags&compWeHaveInstructions != 0 {
			haveInstructions = true
		}
		if flags&compMoreComponents == 0 {
			break
		}
	}
	if haveInstructions {
		insLen, err := r.u16()
		if err == nil {
			trailingInstructions, _ = r.bytes(int(insLen))
		}
	}
	out.Instructions = trailingInstructions
	out.Points = append(out.Points, useMyMetricsPhantom[:]...)
	return out, nil
}

func transformPoint(p Point, m [4]float64) (x, y float64) {
	return m[0]*float64(p.X) + m[2]*float64(p.Y), m[1]*float64(p.X) + m[3]*float64(p.Y)
}

func roundFloat(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

func read2x2(r *reader) ([4]float64, error) {
	a, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	b, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	c, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	d, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	return [4]float64{a, b, c, d}, nil
}

func readXYScale(r *reader) ([4]float64, error) {
	a, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	d, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	return [4]float64{a, 0, 0, d}, nil
}

func readUniformScale(r *reader) ([4]float64, error) {
	a, err := readF2Dot14(r)
	if err != nil {
		return [4]float64{}, err
	}
	return [4]float64{a, 0, 0, a}, nil
}

func readF2Dot14(r *reader) (float64, error) {
	v, err := r.i16()
	if err != nil {
		return 0, err
	}
	return float64(v) / (1 << 14), nil
}

func (f *Font) hMetricFor(i Index) HMetric {
	idx := int(i)
	if idx < 0 || idx >= len(f.hMetrics) {
		return HMetric{}
	}
	return f.hMetrics[idx]
}

func (f *Font) vMetricFor(i Index) (VMetric, bool) {
	idx := int(i)
	if !f.hasVMetrics || idx < 0 || idx >= len(f.vMetrics) {
		return VMetric{}, false
	}
	return f.vMetrics[idx], true
}

// basePhantomPoints synthesizes the four phantom points for glyph i before
// any hinting has run: pp1/pp2 carry the horizontal origin (at the glyph's
// left side bearing) and the horizontal advance; pp3/pp4 carry the
// vertical origin and advance, synthesized from the OS/2 typographic
// ascender when vhea/vmtx are absent, as no vertical layout table exists
// to source them from. xMin is the glyph's own decoded bounding-box
// minimum X, 0 for an empty glyph (no contour, hence no bounds to read).
func (f *Font) basePhantomPoints(i Index, hm HMetric, xMin int32) [4]Point {
	pp1X := xMin - int32(hm.LeftSideBearing)
	pp2X := pp1X + int32(hm.AdvanceWidth)

	var topSB, advHeight int32
	if vm, ok := f.vMetricFor(i); ok {
		topSB = int32(vm.TopSideBearing)
		advHeight = int32(vm.AdvanceHeight)
	} else {
		advHeight = int32(f.typoAscender) - int32(f.typoDescender)
		topSB = int32(f.typoAscender)
	}
	pp3Y := topSB
	pp4Y := pp3Y - advHeight

	return [4]Point{
		{X: pp1X, Y: 0, Kind: OnCurve},
		{X: pp2X, Y: 0, Kind: OnCurve},
		{X: 0, Y: pp3Y, Kind: OnCurve},
		{X: 0, Y: pp4Y, Kind: OnCurve},
	}
}
