// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttf

import (
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/hint"
	"github.com/vectorfont/ttf/raster"
	"github.com/vectorfont/ttf/sfnt"
)

// Glyph is one hinted-or-scaled, not-yet-rasterized outline, together with
// the pixel metrics a caller needs to place it on a page.
type Glyph struct {
	outline *sfnt.Outline
	points  []hint.Point // real contour points, then 4 phantom points, all in 26.6 pixels

	minX, minY, maxX, maxY fixed.Int26Dot6
}

func newGlyph(outline *sfnt.Outline, points []hint.Point) (*Glyph, error) {
	g := &Glyph{outline: outline, points: points}
	g.computeBounds()
	return g, nil
}

func (g *Glyph) computeBounds() {
	n := len(g.points) - 4
	if n <= 0 {
		return
	}
	minX, minY := g.points[0].X, g.points[0].Y
	maxX, maxY := minX, minY
	for _, p := range g.points[:n] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	g.minX, g.minY, g.maxX, g.maxY = minX, minY, maxX, maxY
}

// RenderWidth returns the width, in pixels, of the bitmap RenderTo needs.
func (g *Glyph) RenderWidth() int {
	if len(g.points) <= 4 {
		return 0
	}
	return g.maxX.Ceil() - g.minX.Floor()
}

// RenderHeight returns the height, in pixels, of the bitmap RenderTo needs.
func (g *Glyph) RenderHeight() int {
	if len(g.points) <= 4 {
		return 0
	}
	return g.maxY.Ceil() - g.minY.Floor()
}

// Bounds returns the glyph's pixel bounding box, in 26.6 coordinates with y
// increasing upward (the font's native convention), or four zeros for an
// empty glyph such as space.
func (g *Glyph) Bounds() (minX, minY, maxX, maxY fixed.Int26Dot6) {
	return g.minX, g.minY, g.maxX, g.maxY
}

// Width returns the glyph's advance width, in 26.6 pixels.
func (g *Glyph) Width() fixed.Int26Dot6 {
	phantom := g.points[len(g.points)-4:]
	return phantom[1].X - phantom[0].X
}

// HorizontalMetrics returns the glyph's left side bearing and advance
// width, both in 26.6 pixels, derived from its phantom points.
func (g *Glyph) HorizontalMetrics() (bearing, advance fixed.Int26Dot6) {
	phantom := g.points[len(g.points)-4:]
	return g.minX - phantom[0].X, phantom[1].X - phantom[0].X
}

// RenderTo decomposes the glyph's contours and rasterizes them into an
// antialiased coverage bitmap written to dst, with the glyph's bounding
// box's top-left corner placed at (dstX, dstY). It returns
// ttferror.UnsupportedFeature if the outline contains a cubic contour
// point, per this library's decision to reject rather than approximate
// cubic curves at rasterization time.
func (g *Glyph) RenderTo(dst raster.Surface, dstX, dstY int) error {
	w, h := g.RenderWidth(), g.RenderHeight()
	if w <= 0 || h <= 0 {
		return nil
	}
	r := raster.NewRasterizer(w, h)
	// Shift every coordinate so the glyph's bounding box starts at (0,0) in
	// the rasterizer's own grid, in 24.8 (two more fractional bits than the
	// 26.6 hinted coordinates carry). The rasterizer's Surface contract puts
	// its origin at the top-left with y increasing downward, while hinted
	// points keep the font's y-increases-upward convention, so the y origin
	// is the bounding box's top (maxY), not its bottom, and y is negated.
	originX, originYTop := g.minX.Floor(), g.maxY.Ceil()
	for c := 0; c < g.outline.NumContours(); c++ {
		start, end := contourRange(g.outline.ContourEnds, c)
		if err := decomposeContour(r, g.outline.Points[start:end+1], g.points[start:end+1], originX, originYTop); err != nil {
			return err
		}
	}
	r.Rasterize(dst, dstX, dstY)
	return nil
}

func contourRange(ends []int, c int) (start, end int) {
	if c == 0 {
		return 0, ends[0]
	}
	return ends[c-1] + 1, ends[c]
}

// decomposeContour walks one contour's on/off-curve points, emitting
// MoveTo/LineTo/QuadraticCurveTo calls against r. kinds carries the
// original (unhinted) PointKind for each point in the same order as pts,
// so that a cubic off-curve point -- which a TrueType glyf table should
// never produce, but which a malformed or composed outline might -- is
// rejected rather than silently treated as quadratic.
func decomposeContour(r *raster.Rasterizer, kinds []sfnt.Point, pts []hint.Point, originX, originYTop int) error {
	n := len(pts)
	if n == 0 {
		return nil
	}
	for _, k := range kinds {
		if k.Kind == sfnt.OffCurveCubic {
			return errCubicUnsupported
		}
	}
	to24_8 := func(p hint.Point) (fixed.Int24Dot8, fixed.Int24Dot8) {
		x := fixed.ToInt24Dot8(p.X - fixed.Int26Dot6(originX<<6))
		y := fixed.ToInt24Dot8(fixed.Int26Dot6(originYTop<<6) - p.Y)
		return x, y
	}
	mid := func(a, b hint.Point) hint.Point {
		return hint.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, OnCurve: true}
	}

	// Find a starting on-curve point, synthesizing the midpoint of the
	// first and last points if the contour begins and ends off-curve.
	start, last := 0, n
	var startPt hint.Point
	var pending *hint.Point
	switch {
	case pts[0].OnCurve:
		startPt = pts[0]
	case pts[n-1].OnCurve:
		startPt = pts[n-1]
		start = n - 1
	default:
		// pts[0] is the first curve's control point; the walk stops at
		// pts[n-1], whose pending curve is flushed back to startPt below.
		startPt = mid(pts[n-1], pts[0])
		first := pts[0]
		pending = &first
		last = n - 1
	}
	sx, sy := to24_8(startPt)
	r.MoveTo(sx, sy)

	// Walk the remaining points in order, holding at most one pending
	// off-curve control point: a second consecutive off-curve point closes
	// the pending curve at their implied midpoint, and an on-curve point
	// closes it directly. When startPt is an on-curve point the walk ends
	// on it; when it is a synthesized midpoint, the last pending curve is
	// flushed to it after the walk.
	for step := 1; step <= last; step++ {
		p := pts[(start+step)%n]
		if p.OnCurve {
			if pending == nil {
				x, y := to24_8(p)
				r.LineTo(x, y)
			} else {
				cx, cy := to24_8(*pending)
				ex, ey := to24_8(p)
				r.QuadraticCurveTo(cx, cy, ex, ey)
				pending = nil
			}
			continue
		}
		if pending != nil {
			mp := mid(*pending, p)
			cx, cy := to24_8(*pending)
			ex, ey := to24_8(mp)
			r.QuadraticCurveTo(cx, cy, ex, ey)
		}
		pc := p
		pending = &pc
	}
	if pending != nil {
		cx, cy := to24_8(*pending)
		ex, ey := to24_8(startPt)
		r.QuadraticCurveTo(cx, cy, ex, ey)
	}
	return nil
}
