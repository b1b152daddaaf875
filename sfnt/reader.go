// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "github.com/vectorfont/ttf/ttferror"

// reader is a positioned, big-endian reader over an in-memory byte slice.
// It underlies every table decoder in this package. Numeric reads are
// decoded into values, but bytes and bytesAt return sub-slices of the
// source rather than copies, and a Font also keeps its glyf, fpgm and prep
// tables as sub-slices (directory.raw), so a decoded Font shares memory
// with the slice it was parsed from.
type reader struct {
	b   []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{b: b}
}

func (r *reader) offset() int { return r.pos }

func (r *reader) seek(off int) error {
	if off < 0 || off > len(r.b) {
		return ttferror.New(ttferror.OutOfBounds, "seek to %d (length %d)", off, len(r.b))
	}
	r.pos = off
	return nil
}

func (r *reader) skip(n int) error {
	return r.seek(r.pos + n)
}

func (r *reader) need(n int) error {
	if n < 0 || r.pos+n > len(r.b) {
		return ttferror.New(ttferror.TruncatedInput, "need %d bytes at offset %d, have %d", n, r.pos, len(r.b)-r.pos)
	}
	return nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.b[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := uint16(r.b[r.pos])<<8 | uint16(r.b[r.pos+1])
	r.pos += 2
	return v, nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := uint32(r.b[r.pos])<<24 | uint32(r.b[r.pos+1])<<16 | uint32(r.b[r.pos+2])<<8 | uint32(r.b[r.pos+3])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

// bytesAt returns the n bytes at absolute offset off within this reader's
// buffer, without disturbing the reader's current position. Used by the
// name table decoder, whose string storage is addressed by offsets
// relative to the table's start rather than read in record order.
func (r *reader) bytesAt(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(r.b) {
		return nil, ttferror.New(ttferror.TruncatedInput, "name string at %d length %d out of range (table length %d)", off, n, len(r.b))
	}
	return r.b[off : off+n], nil
}

// tag reads the next 4 bytes as a table tag string.
func (r *reader) tag() (string, error) {
	b, err := r.bytes(4)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// u16At and u32At are unchecked convenience readers used when the caller
// has already bounds-checked a slice (e.g. a glyf entry sliced by loca).
func u16At(b []byte, i int) uint16 {
	return uint16(b[i])<<8 | uint16(b[i+1])
}

func u32At(b []byte, i int) uint32 {
	return uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3])
}
