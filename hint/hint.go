// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package hint implements the TrueType bytecode interpreter: the stack
// machine, graphics state and roughly 180 opcodes (§4.7) that let a font's
// fpgm/prep/glyph programs adjust scaled outline coordinates onto the
// pixel grid before rasterization.
package hint

import (
	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/sfnt"
	"github.com/vectorfont/ttf/ttferror"
)

const (
	maxCallStackDepth = 128
	maxLoopIterations = 1 << 16
	maxStackDepthHard = 1 << 16
)

type funcDef struct {
	code []byte
}

// Hinter executes bytecode for one Font at one scale. It is not safe for
// concurrent use: a single Hinter carries mutable interpreter state
// (stack, storage, twilight zone) across calls, matching the one-Hinter-
// per-goroutine concurrency model every caller in this module follows.
type Hinter struct {
	font  *sfnt.Font
	scale fixed.Int26Dot6 // pixels per em, 26.6

	defaultGS graphicsState
	gs        graphicsState

	stack   []int32
	storage []int32
	cvt     []fixed.Int26Dot6

	functions       map[int]funcDef
	instructionDefs map[int]funcDef

	zones [2]zone

	twilightDefault []zonePoint

	program []byte
	ip      int

	callDepth int
}

// NewHinter allocates a Hinter for font. Call Init before hinting any
// glyph, and again whenever the scale (pixels per em) changes.
func NewHinter(font *sfnt.Font) *Hinter {
	return &Hinter{font: font}
}

// Init (re)runs fpgm and prep at the given scale (pixels per em, as a 26.6
// value) and snapshots the resulting twilight zone and default graphics
// state, which every subsequent glyph hint run restores before executing
// the glyph's own instructions. Init must be called once per distinct
// scale before the first Hint call at that scale.
func (h *Hinter) Init(scale fixed.Int26Dot6) error {
	h.scale = scale
	h.stack = make([]int32, 0, h.font.MaxStackElements())
	h.storage = make([]int32, h.font.MaxStorage())
	h.functions = make(map[int]funcDef)
	h.instructionDefs = make(map[int]funcDef)
	h.callDepth = 0

	rawCVT := h.font.ControlValueTable()
	h.cvt = make([]fixed.Int26Dot6, len(rawCVT))
	for i, v := range rawCVT {
		h.cvt[i] = h.funitsToPixels(int32(v))
	}

	h.gs = globalDefaultGS
	h.zones[zoneTwilight] = zone{points: make([]zonePoint, h.font.MaxTwilightPoints())}
	h.zones[zoneGlyph] = zone{}

	if fpgm := h.font.FontProgram(); len(fpgm) > 0 {
		if err := h.execProgram(fpgm); err != nil {
			return err
		}
	}
	if prep := h.font.ControlValueProgram(); len(prep) > 0 {
		if err := h.execProgram(prep); err != nil {
			return err
		}
	}
	h.defaultGS = h.gs
	h.twilightDefault = append([]zonePoint(nil), h.zones[zoneTwilight].points...)
	return nil
}

func (h *Hinter) funitsToPixels(v int32) fixed.Int26Dot6 {
	upem := int64(h.font.UnitsPerEm())
	return fixed.Int26Dot6((int64(v)*int64(h.scale) + upem/2) / upem)
}

// Point is one hinted outline point or phantom point, in 26.6 pixels.
type Point struct {
	X, Y               fixed.Int26Dot6
	OnCurve            bool
}

func exportPoints(pts []zonePoint, outline *sfnt.Outline) []Point {
	out := make([]Point, len(pts))
	n := len(outline.Points)
	for i, p := range pts {
		onCurve := i >= n-4 || outline.Points[i].Kind == sfnt.OnCurve
		out[i] = Point{X: p.X, Y: p.Y, OnCurve: onCurve}
	}
	return out
}

// Hint scales outline's FUnit points to this Hinter's current scale, runs
// outline's instructions (if any) against them, and returns the resulting
// points in outline order, including the four trailing phantom points.
// instructions, when non-nil, overrides outline.Instructions — used by
// composite glyphs that carry their own instruction stream separate from
// any component's.
func (h *Hinter) Hint(outline *sfnt.Outline, instructions []byte) ([]Point, error) {
	if instructions == nil {
		instructions = outline.Instructions
	}
	n := len(outline.Points)
	pts := make([]zonePoint, n)
	for i, p := range outline.Points {
		x := h.funitsToPixels(p.X)
		y := h.funitsToPixels(p.Y)
		pts[i] = zonePoint{X: x, Y: y, OrigX: x, OrigY: y}
	}
	h.zones[zoneGlyph] = zone{points: pts, contourEnds: outline.ContourEnds}
	h.zones[zoneTwilight].points = append([]zonePoint(nil), h.twilightDefault...)
	h.gs = h.defaultGS
	h.gs.rp = [3]int{0, 0, 0}
	h.gs.zp = [3]int{1, 1, 1}

	if len(instructions) != 0 {
		if err := h.execProgram(instructions); err != nil {
			return nil, err
		}
	}
	return exportPoints(h.zones[zoneGlyph].points, outline), nil
}

func (h *Hinter) push(v int32) {
	h.stack = append(h.stack, v)
}

func (h *Hinter) pop() (int32, error) {
	n := len(h.stack)
	if n == 0 {
		return 0, ttferror.New(ttferror.InvalidBytecode, "pop from empty stack")
	}
	v := h.stack[n-1]
	h.stack = h.stack[:n-1]
	return v, nil
}

func (h *Hinter) popN(n int) ([]int32, error) {
	if len(h.stack) < n {
		return nil, ttferror.New(ttferror.InvalidBytecode, "stack underflow: need %d, have %d", n, len(h.stack))
	}
	v := append([]int32(nil), h.stack[len(h.stack)-n:]...)
	h.stack = h.stack[:len(h.stack)-n]
	return v, nil
}

func (h *Hinter) execProgram(code []byte) error {
	h.program, h.ip = code, 0
	for h.ip < len(h.program) {
		if err := h.step(); err != nil {
			return err
		}
	}
	return nil
}

// callFunction runs def.code as a subroutine, guarding against runaway
// recursion: CALL and LOOPCALL both funnel through here.
func (h *Hinter) callFunction(def funcDef, times int) error {
	h.callDepth++
	defer func() { h.callDepth-- }()
	if h.callDepth > maxCallStackDepth {
		return ttferror.New(ttferror.InvalidBytecode, "function call depth exceeds %d", maxCallStackDepth)
	}
	if times < 0 || times > maxLoopIterations {
		return ttferror.New(ttferror.InvalidBytecode, "loopcall count %d out of range", times)
	}
	savedProgram, savedIP := h.program, h.ip
	for i := 0; i < times; i++ {
		h.program, h.ip = def.code, 0
		for h.ip < len(h.program) {
			if err := h.step(); err != nil {
				return err
			}
		}
	}
	h.program, h.ip = savedProgram, savedIP
	return nil
}

func (h *Hinter) zp(i int) (*zone, error) {
	n := h.gs.zp[i]
	if n != 0 && n != 1 {
		return nil, ttferror.New(ttferror.InvalidBytecode, "bad zone pointer %d", n)
	}
	return &h.zones[n], nil
}

func (h *Hinter) point(zoneIdx, idx int) (*zonePoint, error) {
	z, err := h.zp(zoneIdx)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(z.points) {
		return nil, ttferror.New(ttferror.InvalidBytecode, "point index %d out of range (zone has %d)", idx, len(z.points))
	}
	return &z.points[idx], nil
}
