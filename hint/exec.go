// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

import (
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/ttferror"
)

func vecFloat(v vector) (x, y float64) {
	return float64(v.x) / (1 << 14), float64(v.y) / (1 << 14)
}

func normalize(x, y float64) vector {
	len := x*x + y*y
	if len == 0 {
		return axisX
	}
	// len is the squared length; take a cheap Newton iteration sqrt since
	// this package otherwise avoids math.Sqrt to keep the interpreter's
	// dependency surface limited to fixed-point arithmetic.
	s := sqrt(len)
	return vector{x: int32((x / s) * (1 << 14)), y: int32((y / s) * (1 << 14))}
}

func sqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	z := v
	for i := 0; i < 20; i++ {
		z = z - (z*z-v)/(2*z)
	}
	return z
}

// touchAxes reports which axes the current freedom vector can move a point
// along, used to mark TouchedX/TouchedY after a direct point move.
func (h *Hinter) touchAxes() (x, y bool) {
	fx, fy := vecFloat(h.gs.fv)
	return fx != 0, fy != 0
}

// projection returns the 26.6 scalar projection of (x,y) onto the current
// projection vector.
func (h *Hinter) projection(x, y fixed.Int26Dot6) fixed.Int26Dot6 {
	px, py := vecFloat(h.gs.pv)
	return fixed.Int26Dot6(float64(x)*px + float64(y)*py)
}

func (h *Hinter) dualProjection(x, y fixed.Int26Dot6) fixed.Int26Dot6 {
	px, py := vecFloat(h.gs.dv)
	return fixed.Int26Dot6(float64(x)*px + float64(y)*py)
}

// movePoint displaces p along the freedom vector so that its projection
// (along the projection vector) changes by distance.
func (h *Hinter) movePoint(p *zonePoint, distance fixed.Int26Dot6) {
	px, py := vecFloat(h.gs.pv)
	fx, fy := vecFloat(h.gs.fv)
	fdotp := px*fx + py*fy
	if fdotp == 0 {
		return
	}
	d := float64(distance) / fdotp
	p.X += fixed.Int26Dot6(d * fx)
	p.Y += fixed.Int26Dot6(d * fy)
	tx, ty := h.touchAxes()
	if tx {
		p.TouchedX = true
	}
	if ty {
		p.TouchedY = true
	}
}

// round applies the current rounding state to a 26.6 distance, per the
// six engine-level rounding strategies plus the two super-round forms.
func (h *Hinter) round(d fixed.Int26Dot6) fixed.Int26Dot6 {
	neg := d < 0
	if neg {
		d = -d
	}
	var r fixed.Int26Dot6
	switch h.gs.round {
	case roundHalfGrid:
		r = (d &^ 0x3F) + 0x20
	case roundGrid:
		r = (d + 0x20) &^ 0x3F
	case roundDoubleGrid:
		r = (d + 0x10) &^ 0x1F
	case roundDownToGrid:
		r = d &^ 0x3F
	case roundUpToGrid:
		r = (d + 0x3F) &^ 0x3F
	case roundOff:
		r = d
	case roundSuper, roundSuper45:
		period := h.gs.roundPeriod
		phase := h.gs.roundPhase
		if period == 0 {
			r = d
			break
		}
		v := d - phase
		half := period / 2
		v = ((v + half) / period) * period
		r = v + phase
		if r < 0 {
			r = 0
		}
	default:
		r = d
	}
	if neg {
		return -r
	}
	return r
}

func (h *Hinter) readCVT(i int32) (fixed.Int26Dot6, error) {
	if i < 0 || int(i) >= len(h.cvt) {
		return 0, ttferror.New(ttferror.InvalidBytecode, "cvt index %d out of range", i)
	}
	return h.cvt[i], nil
}

func (h *Hinter) iup(axis int) error {
	g := &h.zones[zoneGlyph]
	for c := 0; c < len(g.contourEnds); c++ {
		start, end := g.pointOf(c)
		h.iupContour(g, start, end, axis)
	}
	return nil
}

func touched(p *zonePoint, axis int) bool {
	if axis == 0 {
		return p.TouchedX
	}
	return p.TouchedY
}

func curCoord(p *zonePoint, axis int) fixed.Int26Dot6 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}
func origCoord(p *zonePoint, axis int) fixed.Int26Dot6 {
	if axis == 0 {
		return p.OrigX
	}
	return p.OrigY
}
func setCoord(p *zonePoint, axis int, v fixed.Int26Dot6) {
	if axis == 0 {
		p.X = v
	} else {
		p.Y = v
	}
}

// iupContour interpolates every untouched point between each pair of
// touched points in one contour, per the classic IUP algorithm: points
// before the first touched point or after the last shift by the same
// delta as their nearest touched neighbor; points between two touched
// points are interpolated proportionally to their original positions.
func (h *Hinter) iupContour(z *zone, start, end, axis int) {
	n := end - start + 1
	if n <= 0 {
		return
	}
	firstTouched := -1
	for i := start; i <= end; i++ {
		if touched(&z.points[i], axis) {
			firstTouched = i
			break
		}
	}
	if firstTouched < 0 {
		return // nothing touched in this contour; leave untouched.
	}
	point := func(i int) *zonePoint {
		return &z.points[start+(i-start+n)%n]
	}
	cur := firstTouched
	for {
		next := -1
		for i := 1; i <= n; i++ {
			cand := start + (cur-start+i)%n
			if touched(point(cand), axis) {
				next = cand
				break
			}
		}
		if next == cur {
			// cur is the contour's only touched point: every other point
			// shifts by its delta.
			d := curCoord(point(cur), axis) - origCoord(point(cur), axis)
			for i := start; i <= end; i++ {
				if i != cur {
					setCoord(&z.points[i], axis, origCoord(&z.points[i], axis)+d)
				}
			}
		}
		if next < 0 || next == cur {
			break
		}
		interpolateRun(point, cur, next, n, axis)
		cur = next
		if cur == firstTouched {
			break
		}
	}
}

func interpolateRun(point func(int) *zonePoint, from, to, n, axis int) {
	p0, p1 := point(from), point(to)
	o0, o1 := origCoord(p0, axis), origCoord(p1, axis)
	c0, c1 := curCoord(p0, axis), curCoord(p1, axis)
	lo, hi := o0, o1
	lc, hc := c0, c1
	if lo > hi {
		lo, hi = hi, lo
		lc, hc = hc, lc
	}
	i := from
	for {
		i = i + 1
		if i >= from+n {
			i -= n
		}
		if point(i) == p1 {
			break
		}
		p := point(i)
		o := origCoord(p, axis)
		var v fixed.Int26Dot6
		switch {
		case o <= lo:
			v = lc + (o - lo)
		case o >= hi:
			v = hc + (o - hi)
		case hi == lo:
			v = lc
		default:
			v = lc + fixed.Int26Dot6(int64(o-lo)*int64(hc-lc)/int64(hi-lo))
		}
		setCoord(p, axis, v)
	}
}

func bool2int32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func int32ToBool(v int32) bool { return v != 0 }
