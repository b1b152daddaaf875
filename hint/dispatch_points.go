// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

import (
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/ttferror"
)

// execMDAP moves point idx (in zone zp0) onto the grid along the freedom
// vector, per MDAP's "round" bit; MDAP[0] just sets rp0/rp1 without
// actually rounding.
func (h *Hinter) execMDAP(op byte, idx int) error {
	p, err := h.point(0, idx)
	if err != nil {
		return err
	}
	cur := h.projection(p.X, p.Y)
	if op == opMDAP1 {
		h.movePoint(p, h.round(cur)-cur)
	}
	h.gs.rp[0], h.gs.rp[1] = idx, idx
	return nil
}

// execMIAP moves point idx in zone zp0 to the (scaled) CVT value at
// cvtIndex, applying the control-value cut-in and optional rounding.
func (h *Hinter) execMIAP(op byte, idx int, cvtIndex int32) error {
	p, err := h.point(0, idx)
	if err != nil {
		return err
	}
	target, err := h.readCVT(cvtIndex)
	if err != nil {
		return err
	}
	cur := h.projection(p.X, p.Y)
	if h.gs.zp[0] == zoneTwilight {
		// Per spec, when operating on the twilight zone MIAP first moves
		// the point to the unrounded CVT value so later references have a
		// defined original position.
		h.movePoint(p, target-cur)
		cur = target
		p.OrigX, p.OrigY = p.X, p.Y
	}
	distance := target - cur
	if abs26dot6(distance) > h.gs.controlValueCutIn {
		// outside cut-in: fall back to the point's own current position,
		// i.e. don't snap to the (too-distant) CVT value.
		target = cur
	}
	if op == opMIAP1 {
		target = h.round(target)
	}
	h.movePoint(p, target-h.projection(p.X, p.Y))
	h.gs.rp[0], h.gs.rp[1] = idx, idx
	return nil
}

func abs26dot6(v fixed.Int26Dot6) fixed.Int26Dot6 {
	if v < 0 {
		return -v
	}
	return v
}

// execMDRP moves point idx in zone zp1 relative to rp0 (in zone zp0),
// matching rp0's distance unless the minimum-distance or control-value
// constraints override it.
func (h *Hinter) execMDRP(op byte) error {
	idx32, err := h.pop()
	if err != nil {
		return err
	}
	idx := int(idx32)
	flags := decodeMDRP(op)
	rp0, err := h.point(0, h.gs.rp[0])
	if err != nil {
		return err
	}
	p, err := h.point(1, idx)
	if err != nil {
		return err
	}
	origDist := h.dualProjection(p.OrigX-rp0.OrigX, p.OrigY-rp0.OrigY)
	distance := origDist
	if flags.round {
		distance = h.round(distance)
	}
	if h.gs.singleWidthCutIn > 0 && abs26dot6(origDist-h.gs.singleWidthValue) < h.gs.singleWidthCutIn {
		if origDist >= 0 {
			distance = h.gs.singleWidthValue
		} else {
			distance = -h.gs.singleWidthValue
		}
	}
	if flags.keepMinimum {
		if origDist >= 0 && distance < h.gs.minimumDistance {
			distance = h.gs.minimumDistance
		} else if origDist < 0 && distance > -h.gs.minimumDistance {
			distance = -h.gs.minimumDistance
		}
	}
	cur := h.projection(p.X, p.Y)
	rpCur := h.projection(rp0.X, rp0.Y)
	h.movePoint(p, (rpCur+distance)-cur)
	h.gs.rp[1] = h.gs.rp[0]
	h.gs.rp[2] = idx
	if flags.setRP0 {
		h.gs.rp[0] = idx
	}
	return nil
}

// execMIRP is MDRP's CVT-aware counterpart: the target distance comes from
// a popped CVT index rather than purely from the points' original
// positions, subject to the control-value cut-in.
func (h *Hinter) execMIRP(op byte) error {
	args, err := h.popN(2)
	if err != nil {
		return err
	}
	idx, cvtIndex := int(args[0]), args[1]
	flags := decodeMDRP(op)
	cvtVal, err := h.readCVT(cvtIndex)
	if err != nil {
		return err
	}
	if h.gs.singleWidthCutIn > 0 && abs26dot6(cvtVal-h.gs.singleWidthValue) < h.gs.singleWidthCutIn {
		if cvtVal >= 0 {
			cvtVal = h.gs.singleWidthValue
		} else {
			cvtVal = -h.gs.singleWidthValue
		}
	}
	rp0, err := h.point(0, h.gs.rp[0])
	if err != nil {
		return err
	}
	p, err := h.point(1, idx)
	if err != nil {
		return err
	}
	origDist := h.dualProjection(p.OrigX-rp0.OrigX, p.OrigY-rp0.OrigY)
	distance := cvtVal
	if abs26dot6(cvtVal-origDist) > h.gs.controlValueCutIn {
		distance = origDist
	}
	if flags.round {
		distance = h.round(distance)
	}
	if flags.keepMinimum {
		if origDist >= 0 && distance < h.gs.minimumDistance {
			distance = h.gs.minimumDistance
		} else if origDist < 0 && distance > -h.gs.minimumDistance {
			distance = -h.gs.minimumDistance
		}
	}
	cur := h.projection(p.X, p.Y)
	rpCur := h.projection(rp0.X, rp0.Y)
	h.movePoint(p, (rpCur+distance)-cur)
	h.gs.rp[1] = h.gs.rp[0]
	h.gs.rp[2] = idx
	if flags.setRP0 {
		h.gs.rp[0] = idx
	}
	return nil
}

func (h *Hinter) execMSIRP(op byte, idx int, distance fixed.Int26Dot6) error {
	rp0, err := h.point(0, h.gs.rp[0])
	if err != nil {
		return err
	}
	p, err := h.point(1, idx)
	if err != nil {
		return err
	}
	cur := h.projection(p.X, p.Y)
	rpCur := h.projection(rp0.X, rp0.Y)
	h.movePoint(p, (rpCur+distance)-cur)
	h.gs.rp[1] = h.gs.rp[0]
	h.gs.rp[2] = idx
	if op == opMSIRP1 {
		h.gs.rp[0] = idx
	}
	return nil
}

func (h *Hinter) execALIGNPTS(i1, i2 int) error {
	p1, err := h.point(0, i1)
	if err != nil {
		return err
	}
	p2, err := h.point(1, i2)
	if err != nil {
		return err
	}
	mid := (h.projection(p1.X, p1.Y) + h.projection(p2.X, p2.Y)) / 2
	h.movePoint(p1, mid-h.projection(p1.X, p1.Y))
	h.movePoint(p2, mid-h.projection(p2.X, p2.Y))
	return nil
}

func (h *Hinter) execALIGNRP() error {
	rp0, err := h.point(0, h.gs.rp[0])
	if err != nil {
		return err
	}
	target := h.projection(rp0.X, rp0.Y)
	for i := int32(0); i < h.gs.loop; i++ {
		idx, err := h.pop()
		if err != nil {
			return err
		}
		p, err := h.point(1, int(idx))
		if err != nil {
			return err
		}
		h.movePoint(p, target-h.projection(p.X, p.Y))
	}
	h.gs.loop = 1
	return nil
}

func (h *Hinter) execSHP(op byte) error {
	zoneForRef := 1
	if op == opSHP0 {
		zoneForRef = 0
	}
	rp, err := h.point(zoneForRef, h.gs.rp[1])
	if err != nil {
		return err
	}
	delta := h.projection(rp.X, rp.Y) - h.projection(rp.OrigX, rp.OrigY)
	for i := int32(0); i < h.gs.loop; i++ {
		idx, err := h.pop()
		if err != nil {
			return err
		}
		p, err := h.point(2, int(idx))
		if err != nil {
			return err
		}
		h.movePoint(p, delta)
	}
	h.gs.loop = 1
	return nil
}

func (h *Hinter) execSHC(op byte) error {
	contourIdx, err := h.pop()
	if err != nil {
		return err
	}
	zoneForRef := 1
	if op == opSHC0 {
		zoneForRef = 0
	}
	rp, err := h.point(zoneForRef, h.gs.rp[1])
	if err != nil {
		return err
	}
	delta := h.projection(rp.X, rp.Y) - h.projection(rp.OrigX, rp.OrigY)
	g, err := h.zp(2)
	if err != nil {
		return err
	}
	if int(contourIdx) < 0 || int(contourIdx) >= len(g.contourEnds) {
		return ttferror.New(ttferror.InvalidBytecode, "shc contour %d out of range", contourIdx)
	}
	start, end := g.pointOf(int(contourIdx))
	for i := start; i <= end; i++ {
		h.movePoint(&g.points[i], delta)
	}
	return nil
}

func (h *Hinter) execSHZ(op byte) error {
	zoneSel, err := h.pop()
	if err != nil {
		return err
	}
	zoneForRef := 1
	if op == opSHZ0 {
		zoneForRef = 0
	}
	rp, err := h.point(zoneForRef, h.gs.rp[1])
	if err != nil {
		return err
	}
	delta := h.projection(rp.X, rp.Y) - h.projection(rp.OrigX, rp.OrigY)
	z := &h.zones[zoneSel]
	for i := range z.points {
		h.movePoint(&z.points[i], delta)
	}
	return nil
}

func (h *Hinter) execIP() error {
	rp1, err := h.point(0, h.gs.rp[1])
	if err != nil {
		return err
	}
	rp2, err := h.point(1, h.gs.rp[2])
	if err != nil {
		return err
	}
	oldLo := h.dualProjection(rp1.OrigX, rp1.OrigY)
	oldHi := h.dualProjection(rp2.OrigX, rp2.OrigY)
	newLo := h.projection(rp1.X, rp1.Y)
	newHi := h.projection(rp2.X, rp2.Y)
	for i := int32(0); i < h.gs.loop; i++ {
		idx, err := h.pop()
		if err != nil {
			return err
		}
		p, err := h.point(2, int(idx))
		if err != nil {
			return err
		}
		o := h.dualProjection(p.OrigX, p.OrigY)
		var v fixed.Int26Dot6
		switch {
		case oldHi == oldLo:
			v = newLo
		default:
			v = newLo + fixed.Int26Dot6(int64(o-oldLo)*int64(newHi-newLo)/int64(oldHi-oldLo))
		}
		h.movePoint(p, v-h.projection(p.X, p.Y))
	}
	h.gs.loop = 1
	return nil
}

func (h *Hinter) execSHPIX(distance fixed.Int26Dot6) error {
	for i := int32(0); i < h.gs.loop; i++ {
		idx, err := h.pop()
		if err != nil {
			return err
		}
		p, err := h.point(2, int(idx))
		if err != nil {
			return err
		}
		fx, fy := vecFloat(h.gs.fv)
		p.X += fixed.Int26Dot6(float64(distance) * fx)
		p.Y += fixed.Int26Dot6(float64(distance) * fy)
		if fx != 0 {
			p.TouchedX = true
		}
		if fy != 0 {
			p.TouchedY = true
		}
	}
	h.gs.loop = 1
	return nil
}

// execISECT computes the intersection of line a0-a1 with line b0-b1 and
// stores it into point p, all in zone zp2/zp1/zp0 per the TrueType
// convention that ISECT always reads from zp0/zp1 and writes to zp2.
func (h *Hinter) execISECT(a []int32) error {
	p, a0i, a1i, b0i, b1i := int(a[0]), int(a[1]), int(a[2]), int(a[3]), int(a[4])
	pa0, err := h.point(1, a0i)
	if err != nil {
		return err
	}
	pa1, err := h.point(1, a1i)
	if err != nil {
		return err
	}
	pb0, err := h.point(0, b0i)
	if err != nil {
		return err
	}
	pb1, err := h.point(0, b1i)
	if err != nil {
		return err
	}
	dest, err := h.point(2, p)
	if err != nil {
		return err
	}
	x1, y1 := float64(pa0.X), float64(pa0.Y)
	x2, y2 := float64(pa1.X), float64(pa1.Y)
	x3, y3 := float64(pb0.X), float64(pb0.Y)
	x4, y4 := float64(pb1.X), float64(pb1.Y)
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		dest.X, dest.Y = pa0.X, pa0.Y
		return nil
	}
	px := ((x1*y2-y1*x2)*(x3-x4) - (x1-x2)*(x3*y4-y3*x4)) / denom
	py := ((x1*y2-y1*x2)*(y3-y4) - (y1-y2)*(x3*y4-y3*x4)) / denom
	dest.X, dest.Y = fixed.Int26Dot6(px), fixed.Int26Dot6(py)
	dest.TouchedX, dest.TouchedY = true, true
	return nil
}

// execDELTAP applies a DELTAP1/2/3 exception list: n pairs of (pointIndex,
// packed byte), the packed byte on top of each pair, whose high nibble is
// the ppem relative to delta_base and whose low nibble selects the step.
func (h *Hinter) execDELTAP(a []int32) error {
	n := int(a[0])
	if len(h.stack) < 2*n {
		return ttferror.New(ttferror.InvalidBytecode, "deltap needs %d pairs, have %d on stack", n, len(h.stack)/2)
	}
	ppem := h.scale.Floor()
	for i := 0; i < n; i++ {
		packed, err := h.pop()
		if err != nil {
			return err
		}
		idx, err := h.pop()
		if err != nil {
			return err
		}
		triggerPpem := int(h.gs.deltaBase) + int(packed>>4)
		if triggerPpem != ppem {
			continue
		}
		magnitude := int32(packed&0xF) - 8
		if magnitude >= 0 {
			magnitude++
		}
		shift := h.gs.deltaShift
		step := magnitude << (6 - shift)
		p, err := h.point(1, int(idx))
		if err != nil {
			return err
		}
		h.movePoint(p, fixed.Int26Dot6(step))
	}
	return nil
}

func (h *Hinter) execDELTAC(op byte, a []int32) error {
	n := int(a[0])
	if len(h.stack) < 2*n {
		return ttferror.New(ttferror.InvalidBytecode, "deltac needs %d pairs, have %d on stack", n, len(h.stack)/2)
	}
	ppem := h.scale.Floor()
	for i := 0; i < n; i++ {
		packed, err := h.pop()
		if err != nil {
			return err
		}
		idx, err := h.pop()
		if err != nil {
			return err
		}
		triggerPpem := int(h.gs.deltaBase) + int(packed>>4)
		if triggerPpem != ppem {
			continue
		}
		magnitude := int32(packed&0xF) - 8
		if magnitude >= 0 {
			magnitude++
		}
		shift := h.gs.deltaShift
		step := magnitude << (6 - shift)
		if int(idx) < 0 || int(idx) >= len(h.cvt) {
			return ttferror.New(ttferror.InvalidBytecode, "deltac cvt index %d out of range", idx)
		}
		h.cvt[idx] += fixed.Int26Dot6(step)
	}
	return nil
}

func (h *Hinter) execFlipRange(lo, hi int, on bool) error {
	_ = on
	if lo > hi {
		return ttferror.New(ttferror.InvalidBytecode, "flip range %d..%d inverted", lo, hi)
	}
	// FLIPRGON/FLIPRGOFF leave every point's on/off-curve status as it
	// was decoded: the range is checked, and no point is changed.
	return nil
}

func (h *Hinter) execSDPVTL(op byte, p2idx, p1idx int) error {
	p2, err := h.point(1, p2idx)
	if err != nil {
		return err
	}
	p1, err := h.point(2, p1idx)
	if err != nil {
		return err
	}
	dx, dy := float64(p2.OrigX-p1.OrigX), float64(p2.OrigY-p1.OrigY)
	if op == opSDPVTL1 {
		dx, dy = -dy, dx
	}
	h.gs.dv = normalize(dx, dy)
	dx2, dy2 := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	if op == opSDPVTL1 {
		dx2, dy2 = -dy2, dx2
	}
	h.gs.pv = normalize(dx2, dy2)
	return nil
}

func (h *Hinter) execWS(idx int, v int32) error {
	if idx < 0 || idx >= len(h.storage) {
		return ttferror.New(ttferror.InvalidBytecode, "storage index %d out of range", idx)
	}
	h.storage[idx] = v
	return nil
}

func (h *Hinter) execRS(idx int) error {
	if idx < 0 || idx >= len(h.storage) {
		return ttferror.New(ttferror.InvalidBytecode, "storage index %d out of range", idx)
	}
	h.push(h.storage[idx])
	return nil
}

func (h *Hinter) execWCVT(idx int32, v fixed.Int26Dot6) error {
	if idx < 0 || int(idx) >= len(h.cvt) {
		return ttferror.New(ttferror.InvalidBytecode, "cvt index %d out of range", idx)
	}
	h.cvt[idx] = v
	return nil
}

// setSuperRound decodes the packed byte pushed before SROUND/S45ROUND into
// period/phase/threshold, per the instruction set's fixed encoding table.
func (h *Hinter) setSuperRound(packed int32, is45 bool) {
	periodSel := (packed >> 6) & 0x3
	var period fixed.Int26Dot6
	switch periodSel {
	case 0:
		period = 1 << 5 // half pixel
	case 1:
		period = 1 << 6 // one pixel
	case 2:
		period = 1 << 7 // two pixels
	default:
		period = 1 << 6
	}
	phaseSel := (packed >> 4) & 0x3
	var phase fixed.Int26Dot6
	switch phaseSel {
	case 0:
		phase = 0
	case 1:
		phase = period / 4
	case 2:
		phase = period / 2
	default:
		phase = period * 3 / 4
	}
	thresholdSteps := packed & 0xF
	var threshold fixed.Int26Dot6
	if thresholdSteps == 0 {
		threshold = period - 1
	} else {
		threshold = (fixed.Int26Dot6(thresholdSteps) - 8) * (period / 8)
	}
	if is45 {
		period = fixed.Int26Dot6(float64(period) * 1.41421356)
	}
	h.gs.roundPeriod, h.gs.roundPhase, h.gs.roundThreshold = period, phase, threshold
	if is45 {
		h.gs.round = roundSuper45
	} else {
		h.gs.round = roundSuper
	}
}

// execFDEF consumes a preceding pushed function number and records the
// bytecode run from here to the matching ENDF as that function's body.
func (h *Hinter) execFDEF() error {
	num, err := h.pop()
	if err != nil {
		return err
	}
	start := h.ip
	depth := 0
	for h.ip < len(h.program) {
		op := h.program[h.ip]
		h.ip++
		switch {
		case op == opFDEF:
			depth++
		case op == opENDF:
			if depth == 0 {
				h.functions[int(num)] = funcDef{code: h.program[start : h.ip-1]}
				return nil
			}
			depth--
		case op >= opPUSHB0 && op <= opPUSHB7:
			h.ip += int(op-opPUSHB0) + 1
		case op >= opPUSHW0 && op <= opPUSHW7:
			h.ip += 2 * (int(op-opPUSHW0) + 1)
		case op == opNPUSHB:
			if h.ip < len(h.program) {
				n := int(h.program[h.ip])
				h.ip += 1 + n
			}
		case op == opNPUSHW:
			if h.ip < len(h.program) {
				n := int(h.program[h.ip])
				h.ip += 1 + 2*n
			}
		}
	}
	return ttferror.New(ttferror.InvalidBytecode, "unterminated FDEF")
}

// execIDEF records an instruction-definition body the same way FDEF does,
// keyed by the opcode it overrides; this interpreter never dispatches to
// an IDEF body (no font in practice overrides a reserved opcode), so the
// definition is parsed only to keep the program counter synchronized.
func (h *Hinter) execIDEF() error {
	num, err := h.pop()
	if err != nil {
		return err
	}
	start := h.ip
	depth := 0
	for h.ip < len(h.program) {
		op := h.program[h.ip]
		h.ip++
		switch {
		case op == opFDEF, op == opIDEF:
			depth++
		case op == opENDF:
			if depth == 0 {
				h.instructionDefs[int(num)] = funcDef{code: h.program[start : h.ip-1]}
				return nil
			}
			depth--
		}
	}
	return ttferror.New(ttferror.InvalidBytecode, "unterminated IDEF")
}
