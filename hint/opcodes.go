// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

// Opcode values, named after the mnemonics in the TrueType instruction set.
// Opcodes 0x00-0x2F and a handful above are single-byte with no immediate
// operand; PUSHB/PUSHW (0xB0-0xBF) carry a variable number of pushed bytes
// or words, encoded in the low 3 bits of the opcode itself.
const (
	opSVTCA0 = 0x00
	opSVTCA1 = 0x01
	opSPVTCA0 = 0x02
	opSPVTCA1 = 0x03
	opSFVTCA0 = 0x04
	opSFVTCA1 = 0x05
	opSPVTL0 = 0x06
	opSPVTL1 = 0x07
	opSFVTL0 = 0x08
	opSFVTL1 = 0x09
	opSPVFS  = 0x0A
	opSFVFS  = 0x0B
	opGPV    = 0x0C
	opGFV    = 0x0D
	opSFVTPV = 0x0E
	opISECT  = 0x0F

	opSRP0 = 0x10
	opSRP1 = 0x11
	opSRP2 = 0x12
	opSZP0 = 0x13
	opSZP1 = 0x14
	opSZP2 = 0x15
	opSZPS = 0x16
	opSLOOP = 0x17
	opRTG  = 0x18
	opRTHG = 0x19
	opSMD  = 0x1A
	opELSE = 0x1B
	opJMPR = 0x1C
	opSCVTCI = 0x1D
	opSSWCI = 0x1E
	opSSW  = 0x1F

	opDUP  = 0x20
	opPOP  = 0x21
	opCLEAR = 0x22
	opSWAP = 0x23
	opDEPTH = 0x24
	opCINDEX = 0x25
	opMINDEX = 0x26
	opALIGNPTS = 0x27
	opUTP  = 0x29
	opLOOPCALL = 0x2A
	opCALL = 0x2B
	opFDEF = 0x2C
	opENDF = 0x2D
	opMDAP0 = 0x2E
	opMDAP1 = 0x2F

	opIUP0 = 0x30
	opIUP1 = 0x31
	opSHP0 = 0x32
	opSHP1 = 0x33
	opSHC0 = 0x34
	opSHC1 = 0x35
	opSHZ0 = 0x36
	opSHZ1 = 0x37
	opSHPIX = 0x38
	opIP    = 0x39
	opMSIRP0 = 0x3A
	opMSIRP1 = 0x3B
	opALIGNRP = 0x3C
	opRTDG = 0x3D
	opMIAP0 = 0x3E
	opMIAP1 = 0x3F

	opNPUSHB = 0x40
	opNPUSHW = 0x41
	opWS     = 0x42
	opRS     = 0x43
	opWCVTP  = 0x44
	opRCVT   = 0x45
	opGC0    = 0x46
	opGC1    = 0x47
	opSCFS   = 0x48
	opMD0    = 0x49
	opMD1    = 0x4A
	opMPPEM  = 0x4B
	opMPS    = 0x4C
	opFLIPON = 0x4D
	opFLIPOFF = 0x4E
	opDEBUG  = 0x4F

	opLT   = 0x50
	opLTEQ = 0x51
	opGT   = 0x52
	opGTEQ = 0x53
	opEQ   = 0x54
	opNEQ  = 0x55
	opODD  = 0x56
	opEVEN = 0x57
	opIF   = 0x58
	opEIF  = 0x59
	opAND  = 0x5A
	opOR   = 0x5B
	opNOT  = 0x5C
	opDELTAP1 = 0x5D
	opSDB  = 0x5E
	opSDS  = 0x5F

	opADD  = 0x60
	opSUB  = 0x61
	opDIV  = 0x62
	opMUL  = 0x63
	opABS  = 0x64
	opNEG  = 0x65
	opFLOOR = 0x66
	opCEILING = 0x67
	opROUND00 = 0x68
	opROUND01 = 0x69
	opROUND10 = 0x6A
	opROUND11 = 0x6B
	opNROUND00 = 0x6C
	opNROUND01 = 0x6D
	opNROUND10 = 0x6E
	opNROUND11 = 0x6F

	opWCVTF = 0x70
	opDELTAP2 = 0x71
	opDELTAP3 = 0x72
	opDELTAC1 = 0x73
	opDELTAC2 = 0x74
	opDELTAC3 = 0x75
	opSROUND = 0x76
	opS45ROUND = 0x77
	opJROT = 0x78
	opJROF = 0x79
	opROFF = 0x7A
	opRUTG = 0x7C
	opRDTG = 0x7D
	opSANGW = 0x7E
	opAA   = 0x7F

	opFLIPPT = 0x80
	opFLIPRGON = 0x81
	opFLIPRGOFF = 0x82
	opSCANCTRL = 0x85
	opSDPVTL0 = 0x86
	opSDPVTL1 = 0x87
	opGETINFO = 0x88
	opIDEF  = 0x89
	opROLL  = 0x8A
	opMAX   = 0x8B
	opMIN   = 0x8C
	opSCANTYPE = 0x8D
	opINSTCTRL = 0x8E

	opPUSHB0 = 0xB0 // PUSHB[abc]: pushes 1-8 bytes
	opPUSHB7 = 0xB7
	opPUSHW0 = 0xB8 // PUSHW[abc]: pushes 1-8 words
	opPUSHW7 = 0xBF

	opMDRP0 = 0xC0 // MDRP[abcde]: 32 variants
	opMDRP31 = 0xDF

	opMIRP0 = 0xE0 // MIRP[abcde]: 32 variants
	opMIRP31 = 0xFF
)

// popCount gives the number of stack arguments each fixed-arity opcode
// consumes, for the opcodes whose arity does not depend on a preceding
// NPUSHB/NPUSHW count or a loop counter. Opcodes not listed here either
// take no arguments, are variable-arity (handled specially in step), or are
// unassigned.
var popCount = [256]int{
	opSPVTL0: 2, opSPVTL1: 2, opSFVTL0: 2, opSFVTL1: 2,
	opSPVFS: 2, opSFVFS: 2,
	opSFVTPV: 0,
	opISECT: 5,
	opSRP0: 1, opSRP1: 1, opSRP2: 1,
	opSZP0: 1, opSZP1: 1, opSZP2: 1, opSZPS: 1,
	opSLOOP: 1,
	opSMD: 1,
	opJMPR: 1,
	opSCVTCI: 1, opSSWCI: 1, opSSW: 1,
	opPOP: 1,
	opCINDEX: 1, opMINDEX: 1,
	opALIGNPTS: 2,
	opUTP: 1,
	opLOOPCALL: 2, opCALL: 1,
	opMDAP0: 1, opMDAP1: 1,
	opSHPIX: 1,
	opIP: 0,
	opMSIRP0: 2, opMSIRP1: 2,
	opALIGNRP: 0,
	opMIAP0: 2, opMIAP1: 2,
	opWS: 2, opRS: 1,
	opWCVTP: 2, opRCVT: 1,
	opGC0: 1, opGC1: 1,
	opSCFS: 2,
	opMD0: 2, opMD1: 2,
	opLT: 2, opLTEQ: 2, opGT: 2, opGTEQ: 2, opEQ: 2, opNEQ: 2,
	opODD: 1, opEVEN: 1,
	opIF: 1,
	opAND: 2, opOR: 2, opNOT: 1,
	opDELTAP1: 1,
	opSDB: 1, opSDS: 1,
	opADD: 2, opSUB: 2, opDIV: 2, opMUL: 2,
	opABS: 1, opNEG: 1,
	opFLOOR: 1, opCEILING: 1,
	opROUND00: 1, opROUND01: 1, opROUND10: 1, opROUND11: 1,
	opNROUND00: 1, opNROUND01: 1, opNROUND10: 1, opNROUND11: 1,
	opWCVTF: 2,
	opDELTAP2: 1, opDELTAP3: 1,
	opDELTAC1: 1, opDELTAC2: 1, opDELTAC3: 1,
	opSROUND: 1, opS45ROUND: 1,
	opJROT: 2, opJROF: 2,
	opSANGW: 1,
	opFLIPPT: 0,
	opFLIPRGON: 2, opFLIPRGOFF: 2,
	opSCANCTRL: 1,
	opSDPVTL0: 2, opSDPVTL1: 2,
	opROLL: 0,
	opMAX: 2, opMIN: 2,
	opSCANTYPE: 1,
	opINSTCTRL: 2,
}

// mdrpFlags decomposes the low 5 bits of an MDRP or MIRP opcode (decodeMDRP
// serves both) into its four independent control bits, in the order the
// TrueType instruction set documents them: setRP0, minimumDistance,
// roundDistance, and a 2-bit distance color.
type mdrpFlags struct {
	setRP0      bool
	keepMinimum bool // "minimum distance" bit; black/white/gray unused here
	round       bool
	color       int
}

func decodeMDRP(op byte) mdrpFlags {
	b := op & 0x1F
	return mdrpFlags{
		setRP0:      b&0x10 != 0,
		keepMinimum: b&0x08 != 0,
		round:       b&0x04 != 0,
		color:       int(b & 0x03),
	}
}
