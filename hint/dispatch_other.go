// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

import "github.com/vectorfont/ttf/ttferror"

// execOther handles every opcode that either takes no stack arguments or
// has a variable arity determined by an inline count, a loop, or control
// flow (IF/ELSE/EIF, FDEF/ENDF, JROT/JROF).
func (h *Hinter) execOther(op byte) error {
	switch op {
	case opSVTCA0:
		h.gs.pv, h.gs.fv, h.gs.dv = axisY, axisY, axisY
		return nil
	case opSVTCA1:
		h.gs.pv, h.gs.fv, h.gs.dv = axisX, axisX, axisX
		return nil
	case opSPVTCA0:
		h.gs.pv, h.gs.dv = axisY, axisY
		return nil
	case opSPVTCA1:
		h.gs.pv, h.gs.dv = axisX, axisX
		return nil
	case opSFVTCA0:
		h.gs.fv = axisY
		return nil
	case opSFVTCA1:
		h.gs.fv = axisX
		return nil
	case opSFVTPV:
		h.gs.fv = h.gs.pv
		return nil
	case opGPV:
		h.push(h.gs.pv.x)
		h.push(h.gs.pv.y)
		return nil
	case opGFV:
		h.push(h.gs.fv.x)
		h.push(h.gs.fv.y)
		return nil
	case opRTG:
		h.gs.round = roundGrid
		return nil
	case opRTHG:
		h.gs.round = roundHalfGrid
		return nil
	case opRTDG:
		h.gs.round = roundDoubleGrid
		return nil
	case opRDTG:
		h.gs.round = roundDownToGrid
		return nil
	case opRUTG:
		h.gs.round = roundUpToGrid
		return nil
	case opROFF:
		h.gs.round = roundOff
		return nil
	case opFLIPON:
		h.gs.autoFlip = true
		return nil
	case opFLIPOFF:
		h.gs.autoFlip = false
		return nil
	case opFLIPPT:
		n := h.gs.loop
		for i := int32(0); i < n; i++ {
			idx, err := h.pop()
			if err != nil {
				return err
			}
			p, err := h.point(1, int(idx))
			if err != nil {
				return err
			}
			_ = p // flipping on/off-curve status has no effect once hinting has
			// already consumed the outline's contour structure; accepted for
			// bytecode compatibility and otherwise a no-op.
		}
		h.gs.loop = 1
		return nil
	case opDEBUG:
		_, err := h.pop()
		return err
	case opDUP:
		v, err := h.pop()
		if err != nil {
			return err
		}
		h.push(v)
		h.push(v)
		return nil
	case opCLEAR:
		h.stack = h.stack[:0]
		return nil
	case opSWAP:
		a, err := h.pop()
		if err != nil {
			return err
		}
		b, err := h.pop()
		if err != nil {
			return err
		}
		h.push(a)
		h.push(b)
		return nil
	case opDEPTH:
		h.push(int32(len(h.stack)))
		return nil
	case opROLL:
		n := len(h.stack)
		if n < 3 {
			return ttferror.New(ttferror.InvalidBytecode, "roll needs 3 elements, have %d", n)
		}
		a, b, c := h.stack[n-3], h.stack[n-2], h.stack[n-1]
		h.stack[n-3], h.stack[n-2], h.stack[n-1] = b, c, a
		return nil
	case opALIGNRP:
		return h.execALIGNRP()
	case opIUP0:
		return h.iup(0)
	case opIUP1:
		return h.iup(1)
	case opSHP0, opSHP1:
		return h.execSHP(op)
	case opSHC0, opSHC1:
		return h.execSHC(op)
	case opSHZ0, opSHZ1:
		return h.execSHZ(op)
	case opIP:
		return h.execIP()
	case opJMPR:
		off, err := h.pop()
		if err != nil {
			return err
		}
		return h.jump(off)
	case opIF:
		return h.execIF()
	case opELSE:
		return h.skipToMatchingEIF(false)
	case opEIF:
		return nil
	case opJROT:
		off, err := h.pop()
		if err != nil {
			return err
		}
		cond, err := h.pop()
		if err != nil {
			return err
		}
		if cond != 0 {
			return h.jump(off)
		}
		return nil
	case opJROF:
		off, err := h.pop()
		if err != nil {
			return err
		}
		cond, err := h.pop()
		if err != nil {
			return err
		}
		if cond == 0 {
			return h.jump(off)
		}
		return nil
	case opNPUSHB:
		n, err := h.fetchByte()
		if err != nil {
			return err
		}
		for i := 0; i < int(n); i++ {
			b, err := h.fetchByte()
			if err != nil {
				return err
			}
			h.push(int32(b))
		}
		return nil
	case opNPUSHW:
		n, err := h.fetchByte()
		if err != nil {
			return err
		}
		for i := 0; i < int(n); i++ {
			w, err := h.fetchWord()
			if err != nil {
				return err
			}
			h.push(int32(w))
		}
		return nil
	case opFDEF:
		return h.execFDEF()
	case opENDF:
		return nil // a bare ENDF outside a CALL is a no-op.
	case opIDEF:
		return h.execIDEF()
	case opMPPEM:
		h.push(int32(h.scale.Floor()))
		return nil
	case opMPS:
		h.push(int32(h.scale))
		return nil
	case opAA:
		_, err := h.pop()
		return err // deprecated AdjustAngle; argument consumed, no effect.
	case opGETINFO:
		sel, err := h.pop()
		if err != nil {
			return err
		}
		h.push(h.getInfo(sel))
		return nil
	}
	return ttferror.New(ttferror.InvalidBytecode, "unknown opcode 0x%02x", op)
}

// jump moves the program counter by offset-1 bytes relative to the
// position of the instruction that read the jump's own opcode byte,
// matching the TrueType convention that JMPR/JROT/JROF offsets are
// relative to the jump instruction itself, not the following one.
func (h *Hinter) jump(offset int32) error {
	target := h.ip - 1 + int(offset)
	if target < 0 || target > len(h.program) {
		return ttferror.New(ttferror.InvalidBytecode, "jump target %d out of range", target)
	}
	h.ip = target
	return nil
}

// execIF evaluates the condition already on the stack (pushed by the
// caller's preceding instruction) and, if false, skips to the matching
// ELSE or EIF.
func (h *Hinter) execIF() error {
	cond, err := h.pop()
	if err != nil {
		return err
	}
	if cond != 0 {
		return nil
	}
	return h.skipToMatchingEIF(true)
}

// skipToMatchingEIF scans forward past nested IF/ELSE/EIF structures. When
// stopAtElse is true (we're skipping a false IF body), it stops at either
// an ELSE or an EIF at the current nesting depth; otherwise (we're an
// ELSE whose IF branch just executed) it only stops at EIF.
func (h *Hinter) skipToMatchingEIF(stopAtElse bool) error {
	depth := 0
	for h.ip < len(h.program) {
		op := h.program[h.ip]
		h.ip++
		switch {
		case op == opIF:
			depth++
		case op == opELSE && depth == 0 && stopAtElse:
			return nil
		case op == opEIF:
			if depth == 0 {
				return nil
			}
			depth--
		case op >= opPUSHB0 && op <= opPUSHB7:
			h.ip += int(op-opPUSHB0) + 1
		case op >= opPUSHW0 && op <= opPUSHW7:
			h.ip += 2 * (int(op-opPUSHW0) + 1)
		case op == opNPUSHB:
			if h.ip >= len(h.program) {
				return ttferror.New(ttferror.InvalidBytecode, "truncated NPUSHB in skipped branch")
			}
			n := int(h.program[h.ip])
			h.ip += 1 + n
		case op == opNPUSHW:
			if h.ip >= len(h.program) {
				return ttferror.New(ttferror.InvalidBytecode, "truncated NPUSHW in skipped branch")
			}
			n := int(h.program[h.ip])
			h.ip += 1 + 2*n
		}
	}
	return ttferror.New(ttferror.InvalidBytecode, "unterminated IF/ELSE")
}

func (h *Hinter) getInfo(selector int32) int32 {
	var result int32
	if selector&0x01 != 0 {
		result |= 42 // emulate a mid-generation MS rasterizer version
	}
	if selector&0x20 != 0 {
		result |= 1 << 12 // grayscale/ClearType-agnostic: report gray rendering
	}
	return result
}
