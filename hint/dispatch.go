// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

import (
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/ttferror"
)

func (h *Hinter) fetchByte() (byte, error) {
	if h.ip >= len(h.program) {
		return 0, ttferror.New(ttferror.InvalidBytecode, "program counter past end")
	}
	b := h.program[h.ip]
	h.ip++
	return b, nil
}

func (h *Hinter) fetchWord() (int16, error) {
	hi, err := h.fetchByte()
	if err != nil {
		return 0, err
	}
	lo, err := h.fetchByte()
	if err != nil {
		return 0, err
	}
	return int16(uint16(hi)<<8 | uint16(lo)), nil
}

// step decodes and executes a single instruction at the current program
// counter, advancing it past the opcode and any inline operands.
func (h *Hinter) step() error {
	op, err := h.fetchByte()
	if err != nil {
		return err
	}

	switch {
	case op >= opPUSHB0 && op <= opPUSHB7:
		n := int(op-opPUSHB0) + 1
		for i := 0; i < n; i++ {
			b, err := h.fetchByte()
			if err != nil {
				return err
			}
			h.push(int32(b))
		}
		return nil
	case op >= opPUSHW0 && op <= opPUSHW7:
		n := int(op-opPUSHW0) + 1
		for i := 0; i < n; i++ {
			w, err := h.fetchWord()
			if err != nil {
				return err
			}
			h.push(int32(w))
		}
		return nil
	case op >= opMDRP0 && op <= opMDRP31:
		return h.execMDRP(op)
	case op >= opMIRP0 && op <= opMIRP31:
		return h.execMIRP(op)
	}

	if n := popCount[op]; n > 0 && !isVariableArity(op) {
		args, err := h.popN(n)
		if err != nil {
			return err
		}
		return h.execFixedArity(op, args)
	}
	return h.execOther(op)
}

func isVariableArity(op byte) bool {
	switch op {
	case opNPUSHB, opNPUSHW, opDUP, opCLEAR, opSWAP, opDEPTH, opROLL,
		opIF, opELSE, opEIF, opJMPR, opJROT, opJROF, opFDEF, opENDF, opIDEF:
		return true
	}
	return false
}

// execFixedArity handles every opcode whose argument count is listed in
// popCount and does not depend on control flow.
func (h *Hinter) execFixedArity(op byte, a []int32) error {
	fx := func(v int32) fixed.Int26Dot6 { return fixed.Int26Dot6(v) }
	switch op {
	case opSPVTL0, opSPVTL1, opSFVTL0, opSFVTL1:
		p2idx, p1idx := int(a[0]), int(a[1])
		z2, err := h.point(1, p2idx)
		if err != nil {
			return err
		}
		z1, err := h.point(2, p1idx)
		if err != nil {
			return err
		}
		dx, dy := float64(z2.X-z1.X), float64(z2.Y-z1.Y)
		if op == opSPVTL1 || op == opSFVTL1 {
			dx, dy = -dy, dx
		}
		v := normalize(dx, dy)
		if op == opSPVTL0 || op == opSPVTL1 {
			h.gs.pv = v
		} else {
			h.gs.fv = v
		}
		return nil
	case opSPVFS:
		h.gs.pv = normalize(float64(a[0]), float64(a[1]))
		return nil
	case opSFVFS:
		h.gs.fv = normalize(float64(a[0]), float64(a[1]))
		return nil
	case opISECT:
		// a = [p, a0, a1, b0, b1] in push order (p was pushed first).
		return h.execISECT(a)
	case opSRP0:
		h.gs.rp[0] = int(a[0])
		return nil
	case opSRP1:
		h.gs.rp[1] = int(a[0])
		return nil
	case opSRP2:
		h.gs.rp[2] = int(a[0])
		return nil
	case opSZP0:
		h.gs.zp[0] = int(a[0])
		return nil
	case opSZP1:
		h.gs.zp[1] = int(a[0])
		return nil
	case opSZP2:
		h.gs.zp[2] = int(a[0])
		return nil
	case opSZPS:
		h.gs.zp = [3]int{int(a[0]), int(a[0]), int(a[0])}
		return nil
	case opSLOOP:
		h.gs.loop = a[0]
		return nil
	case opSMD:
		h.gs.minimumDistance = fx(a[0])
		return nil
	case opSCVTCI:
		h.gs.controlValueCutIn = fx(a[0])
		return nil
	case opSSWCI:
		h.gs.singleWidthCutIn = fx(a[0])
		return nil
	case opSSW:
		h.gs.singleWidthValue = h.funitsToPixels(a[0])
		return nil
	case opPOP:
		return nil
	case opCINDEX:
		i := int(a[0])
		if i < 1 || i > len(h.stack) {
			return ttferror.New(ttferror.InvalidBytecode, "cindex %d out of range", i)
		}
		h.push(h.stack[len(h.stack)-i])
		return nil
	case opMINDEX:
		i := int(a[0])
		if i < 1 || i > len(h.stack) {
			return ttferror.New(ttferror.InvalidBytecode, "mindex %d out of range", i)
		}
		j := len(h.stack) - i
		v := h.stack[j]
		h.stack = append(h.stack[:j], h.stack[j+1:]...)
		h.push(v)
		return nil
	case opALIGNPTS:
		return h.execALIGNPTS(int(a[0]), int(a[1]))
	case opUTP:
		p, err := h.point(1, int(a[0]))
		if err != nil {
			return err
		}
		p.TouchedX, p.TouchedY = false, false
		return nil
	case opLOOPCALL:
		fn, ok := h.functions[int(a[0])]
		if !ok {
			return ttferror.New(ttferror.InvalidBytecode, "loopcall of undefined function %d", a[0])
		}
		return h.callFunction(fn, int(a[1]))
	case opCALL:
		fn, ok := h.functions[int(a[0])]
		if !ok {
			return ttferror.New(ttferror.InvalidBytecode, "call of undefined function %d", a[0])
		}
		return h.callFunction(fn, 1)
	case opMDAP0, opMDAP1:
		return h.execMDAP(op, int(a[0]))
	case opSHPIX:
		return h.execSHPIX(fx(a[0]))
	case opMSIRP0, opMSIRP1:
		return h.execMSIRP(op, int(a[0]), fx(a[1]))
	case opMIAP0, opMIAP1:
		return h.execMIAP(op, int(a[0]), a[1])
	case opWS:
		return h.execWS(int(a[0]), a[1])
	case opRS:
		return h.execRS(int(a[0]))
	case opWCVTP:
		return h.execWCVT(a[0], fx(a[1]))
	case opWCVTF:
		return h.execWCVT(a[0], h.funitsToPixels(a[1]))
	case opRCVT:
		v, err := h.readCVT(a[0])
		if err != nil {
			return err
		}
		h.push(int32(v))
		return nil
	case opGC0, opGC1:
		p, err := h.point(1, int(a[0]))
		if err != nil {
			return err
		}
		if op == opGC0 {
			h.push(int32(h.projection(p.X, p.Y)))
		} else {
			h.push(int32(h.dualProjection(p.OrigX, p.OrigY)))
		}
		return nil
	case opSCFS:
		p, err := h.point(1, int(a[0]))
		if err != nil {
			return err
		}
		h.movePoint(p, fx(a[1])-h.projection(p.X, p.Y))
		return nil
	case opMD0, opMD1:
		p1, err := h.point(1, int(a[0]))
		if err != nil {
			return err
		}
		p2, err := h.point(2, int(a[1]))
		if err != nil {
			return err
		}
		if op == opMD0 {
			h.push(int32(h.projection(p1.X-p2.X, p1.Y-p2.Y)))
		} else {
			h.push(int32(h.dualProjection(p1.OrigX-p2.OrigX, p1.OrigY-p2.OrigY)))
		}
		return nil
	case opLT:
		h.push(bool2int32(a[1] < a[0]))
		return nil
	case opLTEQ:
		h.push(bool2int32(a[1] <= a[0]))
		return nil
	case opGT:
		h.push(bool2int32(a[1] > a[0]))
		return nil
	case opGTEQ:
		h.push(bool2int32(a[1] >= a[0]))
		return nil
	case opEQ:
		h.push(bool2int32(a[0] == a[1]))
		return nil
	case opNEQ:
		h.push(bool2int32(a[0] != a[1]))
		return nil
	case opODD:
		h.push(bool2int32(h.round(fx(a[0])).Floor()%2 != 0))
		return nil
	case opEVEN:
		h.push(bool2int32(h.round(fx(a[0])).Floor()%2 == 0))
		return nil
	case opAND:
		h.push(bool2int32(int32ToBool(a[0]) && int32ToBool(a[1])))
		return nil
	case opOR:
		h.push(bool2int32(int32ToBool(a[0]) || int32ToBool(a[1])))
		return nil
	case opNOT:
		h.push(bool2int32(!int32ToBool(a[0])))
		return nil
	case opDELTAP1, opDELTAP2, opDELTAP3:
		return h.execDELTAP(a)
	case opSDB:
		h.gs.deltaBase = a[0]
		return nil
	case opSDS:
		h.gs.deltaShift = a[0]
		return nil
	case opADD:
		h.push(a[1] + a[0])
		return nil
	case opSUB:
		h.push(a[1] - a[0])
		return nil
	case opDIV:
		if a[0] == 0 {
			return ttferror.New(ttferror.InvalidBytecode, "division by zero")
		}
		h.push(int32((int64(a[1]) << 6) / int64(a[0])))
		return nil
	case opMUL:
		h.push(int32((int64(a[1]) * int64(a[0])) >> 6))
		return nil
	case opABS:
		v := a[0]
		if v < 0 {
			v = -v
		}
		h.push(v)
		return nil
	case opNEG:
		h.push(-a[0])
		return nil
	case opFLOOR:
		h.push(int32(fixed.Floor26Dot6(fx(a[0]))))
		return nil
	case opCEILING:
		h.push(int32(fixed.Ceil26Dot6(fx(a[0]))))
		return nil
	case opROUND00, opROUND01, opROUND10, opROUND11:
		h.push(int32(h.round(fx(a[0]))))
		return nil
	case opNROUND00, opNROUND01, opNROUND10, opNROUND11:
		h.push(a[0])
		return nil
	case opDELTAC1, opDELTAC2, opDELTAC3:
		return h.execDELTAC(op, a)
	case opSROUND:
		h.setSuperRound(a[0], false)
		return nil
	case opS45ROUND:
		h.setSuperRound(a[0], true)
		return nil
	case opSANGW:
		return nil // deprecated; accepted and ignored.
	case opFLIPRGON:
		return h.execFlipRange(int(a[0]), int(a[1]), true)
	case opFLIPRGOFF:
		return h.execFlipRange(int(a[0]), int(a[1]), false)
	case opSCANCTRL:
		h.gs.scanControl = a[0] != 0
		return nil
	case opSDPVTL0, opSDPVTL1:
		return h.execSDPVTL(op, int(a[0]), int(a[1]))
	case opMAX:
		if a[0] > a[1] {
			h.push(a[0])
		} else {
			h.push(a[1])
		}
		return nil
	case opMIN:
		if a[0] < a[1] {
			h.push(a[0])
		} else {
			h.push(a[1])
		}
		return nil
	case opSCANTYPE:
		h.gs.scanType = a[0]
		return nil
	case opINSTCTRL:
		return nil // selector/value consumed; no observable interpreter effect here.
	}
	return ttferror.New(ttferror.InvalidBytecode, "unhandled fixed-arity opcode 0x%02x", op)
}
