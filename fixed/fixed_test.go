// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package fixed

import "testing"

func TestFloorCeilRound26Dot6(t *testing.T) {
	for _, tc := range []struct {
		in              Int26Dot6
		floor, ceil, rd int32
	}{
		{0, 0, 0, 0},
		{1, 0, 64, 0},
		{63, 0, 64, 64},
		{64, 64, 64, 64},
		{65, 64, 128, 64},
		{-1, -64, 0, 0},
		{-65, -128, -64, -64},
	} {
		if got := int32(Floor26Dot6(tc.in)); got != tc.floor {
			t.Errorf("Floor26Dot6(%d) = %d, want %d", tc.in, got, tc.floor)
		}
		if got := int32(Ceil26Dot6(tc.in)); got != tc.ceil {
			t.Errorf("Ceil26Dot6(%d) = %d, want %d", tc.in, got, tc.ceil)
		}
		if got := int32(Round26Dot6(tc.in)); got != tc.rd {
			t.Errorf("Round26Dot6(%d) = %d, want %d", tc.in, got, tc.rd)
		}
		if d := Ceil26Dot6(tc.in) - Floor26Dot6(tc.in); d != 0 && d != 64 {
			t.Errorf("ceil-floor for %d = %d, want 0 or 64 (one whole pixel)", tc.in, d)
		}
	}
}

func TestDivMod24Dot8(t *testing.T) {
	for a := Int24Dot8(-300); a <= 300; a += 7 {
		for _, b := range []Int24Dot8{1, 2, 3, -1, -5, 17, -17} {
			q, r := DivMod24Dot8(a, b)
			if got := q*b + r; got != a {
				t.Fatalf("DivMod24Dot8(%d, %d): q*b+r = %d, want %d", a, b, got, a)
			}
			absB := b
			if absB < 0 {
				absB = -absB
			}
			if r < 0 || r >= absB {
				t.Fatalf("DivMod24Dot8(%d, %d): remainder %d out of [0, %d)", a, b, r, absB)
			}
		}
	}
}

func TestDivModInt(t *testing.T) {
	for a := -50; a <= 50; a++ {
		for _, b := range []int{1, 2, 3, -4, 9, -9} {
			q, r := DivModInt(a, b)
			if got := q*b + r; got != a {
				t.Fatalf("DivModInt(%d, %d): q*b+r = %d, want %d", a, b, got, a)
			}
			absB := b
			if absB < 0 {
				absB = -absB
			}
			if r < 0 || r >= absB {
				t.Fatalf("DivModInt(%d, %d): remainder %d out of [0, %d)", a, b, r, absB)
			}
		}
	}
}

func TestToInt24Dot8Exact(t *testing.T) {
	// 26.6 -> 24.8 must shift left by exactly 2 with no information loss.
	for _, v := range []Int26Dot6{0, 1, -1, 64, -64, 1<<20 + 37} {
		got := ToInt24Dot8(v)
		if want := Int24Dot8(int32(v)) << 2; got != want {
			t.Errorf("ToInt24Dot8(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestInt2Dot14ToInt16Dot16(t *testing.T) {
	half := Int2Dot14(1 << 13) // 0.5 in 2.14
	got := half.ToInt16Dot16()
	if want := int32(1 << 15); got != want { // 0.5 in 16.16
		t.Errorf("0.5 (2.14).ToInt16Dot16() = %d, want %d", got, want)
	}
	if got, want := half.Float(), 0.5; got != want {
		t.Errorf("0.5 (2.14).Float() = %v, want %v", got, want)
	}
	neg := Int2Dot14(-1 << 13)
	if got := neg.ToInt16Dot16(); got != -(1 << 15) {
		t.Errorf("-0.5 (2.14).ToInt16Dot16() = %d, want %d", got, -(1 << 15))
	}
}
