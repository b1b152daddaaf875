// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package hint

import "testing"

// newTestHinter builds a Hinter with no backing Font, suitable for
// exercising the stack machine and graphics state directly without
// decoding a real SFNT file.
func newTestHinter() *Hinter {
	h := &Hinter{}
	h.stack = make([]int32, 0, 64)
	h.functions = make(map[int]funcDef)
	h.instructionDefs = make(map[int]funcDef)
	h.gs = globalDefaultGS
	h.zones[zoneTwilight] = zone{}
	h.zones[zoneGlyph] = zone{}
	return h
}

// TestSFVTCAThenGFV exercises §8's "SFVTCA + GFV yields (16384, 0) or
// (0, 16384) depending on the axis" property.
func TestSFVTCAThenGFV(t *testing.T) {
	for _, tc := range []struct {
		name   string
		opcode byte
		wantX  int32
		wantY  int32
	}{
		{"y-axis", opSFVTCA0, 0, 1 << 14},
		{"x-axis", opSFVTCA1, 1 << 14, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHinter()
			if err := h.execProgram([]byte{tc.opcode, opGFV}); err != nil {
				t.Fatalf("execProgram: %v", err)
			}
			y, err := h.pop()
			if err != nil {
				t.Fatalf("pop y: %v", err)
			}
			x, err := h.pop()
			if err != nil {
				t.Fatalf("pop x: %v", err)
			}
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("GFV after %#x = (%d, %d), want (%d, %d)", tc.opcode, x, y, tc.wantX, tc.wantY)
			}
			if len(h.stack) != 0 {
				t.Errorf("stack not empty after two pops: %v", h.stack)
			}
		})
	}
}

// TestIfElseEifBalanced exercises §8's property that executing any
// well-formed program with an empty stack leaves the stack empty, for an
// IF/EIF program whose condition is false: IF consumes the condition and
// its body is skipped.
func TestIfElseEifBalanced(t *testing.T) {
	h := newTestHinter()
	// PUSHB(1) 0 -> push 0 (false); IF DUP EIF; stack should be
	// untouched relative to before the conditional, since the IF side is
	// skipped and ELSE is absent.
	program := []byte{
		opPUSHB0, 0x00, // push 0
		opIF,
		opDUP,
		opEIF,
	}
	if err := h.execProgram(program); err != nil {
		t.Fatalf("execProgram: %v", err)
	}
	if got, want := len(h.stack), 0; got != want {
		t.Fatalf("stack depth = %d, want %d (condition popped by IF, DUP skipped)", got, want)
	}
	if v, err := h.pop(); err == nil {
		t.Errorf("leftover stack value %d, want an empty stack", v)
	}
}

// TestCallStackDepthBounded exercises the 128-deep call-stack bound by
// constructing a function that calls itself and checking that execution
// fails rather than recursing forever.
func TestCallStackDepthBounded(t *testing.T) {
	h := newTestHinter()
	// Function 0 calls itself: PUSHB 0; CALL.
	h.functions[0] = funcDef{code: []byte{opPUSHB0, 0x00, opCALL}}
	err := h.callFunction(h.functions[0], 1)
	if err == nil {
		t.Fatal("expected an error from unbounded self-recursion, got nil")
	}
}

// TestPopFromEmptyStack exercises the documented InvalidBytecode fault for
// a pop beyond what was pushed.
func TestPopFromEmptyStack(t *testing.T) {
	h := newTestHinter()
	if _, err := h.pop(); err == nil {
		t.Fatal("expected an error popping an empty stack, got nil")
	}
}
