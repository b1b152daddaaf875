// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"testing"

	"github.com/vectorfont/ttf/ttferror"
)

func TestReaderBigEndian(t *testing.T) {
	r := newReader([]byte{0x01, 0x02, 0xFF, 0xFE, 0x00, 0x00, 0x00, 0x2A})
	u8, err := r.u8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("u8() = %v, %v, want 0x01, nil", u8, err)
	}
	i8, err := r.i8()
	if err != nil || i8 != 0x02 {
		t.Fatalf("i8() = %v, %v, want 0x02, nil", i8, err)
	}
	i16, err := r.i16()
	if err != nil || i16 != -2 {
		t.Fatalf("i16() = %v, %v, want -2, nil", i16, err)
	}
	u32, err := r.u32()
	if err != nil || u32 != 0x2A {
		t.Fatalf("u32() = %v, %v, want 0x2A, nil", u32, err)
	}
}

func TestReaderTruncated(t *testing.T) {
	r := newReader([]byte{0x00, 0x01})
	if _, err := r.u32(); !ttferror.Is(err, ttferror.TruncatedInput) {
		t.Fatalf("u32() on a 2-byte buffer: err = %v, want TruncatedInput", err)
	}
}

func TestReaderSeekOutOfBounds(t *testing.T) {
	r := newReader([]byte{0x00, 0x01, 0x02})
	if err := r.seek(10); !ttferror.Is(err, ttferror.OutOfBounds) {
		t.Fatalf("seek(10) on a 3-byte buffer: err = %v, want OutOfBounds", err)
	}
	if err := r.seek(3); err != nil {
		t.Fatalf("seek(3) (one past the last byte) should succeed: %v", err)
	}
}

func TestReaderTag(t *testing.T) {
	r := newReader([]byte("true"))
	tag, err := r.tag()
	if err != nil || tag != "true" {
		t.Fatalf("tag() = %q, %v, want \"true\", nil", tag, err)
	}
}
