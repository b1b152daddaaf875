// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package fixed implements the three fixed-point number representations used
// throughout the font decoder, the bytecode interpreter and the rasterizer:
// 2.14 unit vector components, 26.6 font-unit/pixel quantities and 24.8
// rasterizer sub-pixel quantities.
package fixed

import "golang.org/x/image/math/fixed"

// Int2Dot14 is a 2.14 signed fixed-point number, as used for unit vector
// components (projection, freedom, dual-projection) and composite glyph
// transforms.
type Int2Dot14 int16

// Float returns x as a floating point number.
func (x Int2Dot14) Float() float64 {
	return float64(x) / (1 << 14)
}

// There is no Int26Dot6-to-Int2Dot14 conversion: 26.6 values are font-unit
// or pixel quantities, never unit vectors, so there is no lossless
// conversion between the two in this package.

// Int26Dot6 is a 26.6 signed fixed-point number, the native unit of font
// metrics once scaled to pixels, and of the TrueType bytecode interpreter's
// arithmetic. It is an alias of golang.org/x/image/math/fixed.Int26_6 so
// that values round-trip without conversion when handed to that package.
type Int26Dot6 = fixed.Int26_6

// Floor26Dot6 returns the greatest integer value <= x, as an Int26Dot6 with
// a zero fractional part.
func Floor26Dot6(x Int26Dot6) Int26Dot6 {
	return x &^ 0x3F
}

// Ceil26Dot6 returns the least integer value >= x, as an Int26Dot6 with a zero
// fractional part.
func Ceil26Dot6(x Int26Dot6) Int26Dot6 {
	return Floor26Dot6(x + 0x3F)
}

// Round26Dot6 rounds x to the nearest whole pixel.
func Round26Dot6(x Int26Dot6) Int26Dot6 {
	return Floor26Dot6(x + 0x20)
}

// ToInt24Dot8 converts an Int26Dot6 font-unit/pixel value to the 24.8
// representation used internally by the rasterizer. The shift is exact: no
// precision is lost widening 6 fractional bits to 8.
func ToInt24Dot8(x Int26Dot6) Int24Dot8 { return Int24Dot8(x) << 2 }

// ToInt16Dot16 widens a 2.14 value to 16.16, sign-extending and shifting left
// by 2, matching the precision-preserving conversion required of the fixed
// point kernel.
func (x Int2Dot14) ToInt16Dot16() int32 { return int32(x) << 2 }

// Int24Dot8 is a 24.8 signed fixed-point number used exclusively inside the
// rasterizer for cell and scanline accumulation.
type Int24Dot8 int32

// Floor returns the greatest integer <= x, as a plain int.
func (x Int24Dot8) Floor() int { return int(x >> 8) }

// Ceil returns the least integer >= x, as a plain int.
func (x Int24Dot8) Ceil() int { return int((x + 0xFF) >> 8) }

// Abs returns the absolute value of x.
func (x Int24Dot8) Abs() Int24Dot8 {
	if x < 0 {
		return -x
	}
	return x
}

// DivMod24Dot8 performs signed division whose remainder is never negative:
// given a truncating quotient q and remainder r (as computed by Go's / and
// % operators), if r is negative then r is moved into [0, |b|) by adding
// |b|, and q is adjusted by one so that q*b + r == a still holds. For a
// positive divisor this is floor division toward minus infinity. The
// rasterizer's scanline stepping depends on that behaviour: a truncating
// divmod would step the wrong cell when a contour edge crosses y=0.
func DivMod24Dot8(a, b Int24Dot8) (q, r Int24Dot8) {
	q, r = a/b, a%b
	if r < 0 {
		if b > 0 {
			q--
			r += b
		} else {
			q++
			r -= b
		}
	}
	return q, r
}

// DivModInt performs the same division, with a remainder in [0, |b|), as
// DivMod24Dot8, but on plain ints. It underlies the
// rasterizer's scanline-stepping arithmetic, which works in integer pixel
// and subpixel counts rather than Int24Dot8 values directly.
func DivModInt(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		if b > 0 {
			q--
			r += b
		} else {
			q++
			r -= b
		}
	}
	return q, r
}
