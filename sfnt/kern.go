// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"sort"

	"github.com/vectorfont/ttf/ttferror"
)

// kernTable holds the pairs of every format-0 horizontal kerning subtable,
// merged into one array sorted by (left,right) glyph index for binary
// search.
type kernTable struct {
	pairs []kernPair
}

type kernPair struct {
	left, right Index
	value       int16
}

const (
	kernCoverageHorizontal = 0x1
	kernCoverageFormatMask = 0xFF00
)

func parseKern(r *reader, tableLen int) (*kernTable, error) {
	if tableLen < 4 {
		return nil, ttferror.New(ttferror.InvalidTable, "kern table too small")
	}
	if _, err := r.u16(); err != nil { // version
		return nil, err
	}
	nTables, err := r.u16()
	if err != nil {
		return nil, err
	}
	var merged *kernTable
	for i := 0; i < int(nTables); i++ {
		if err := r.need(6); err != nil {
			break
		}
		if _, err := r.u16(); err != nil { // subtable version
			return nil, err
		}
		length, err := r.u16()
		if err != nil {
			return nil, err
		}
		coverage, err := r.u16()
		if err != nil {
			return nil, err
		}
		subStart := r.offset()
		if coverage&kernCoverageHorizontal == 0 || (coverage>>8) != 0 {
			// Only format 0, horizontal, is in scope; skip anything else.
			if err := r.seek(subStart + int(length) - 6); err != nil {
				return nil, err
			}
			continue
		}
		nPairs, err := r.u16()
		if err != nil {
			return nil, err
		}
		if err := r.skip(6); err != nil { // searchRange, entrySelector, rangeShift
			return nil, err
		}
		t := &kernTable{pairs: make([]kernPair, nPairs)}
		for j := range t.pairs {
			left, err := r.u16()
			if err != nil {
				return nil, err
			}
			right, err := r.u16()
			if err != nil {
				return nil, err
			}
			val, err := r.i16()
			if err != nil {
				return nil, err
			}
			t.pairs[j] = kernPair{Index(left), Index(right), val}
		}
		if merged == nil {
			merged = t
		} else {
			merged.pairs = append(merged.pairs, t.pairs...)
			ps := merged.pairs
			sort.SliceStable(ps, func(a, b int) bool {
				return ps[a].left < ps[b].left || (ps[a].left == ps[b].left && ps[a].right < ps[b].right)
			})
		}
		if err := r.seek(subStart + int(length) - 6); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// lookup returns the kerning adjustment, in FUnits, for the ordered glyph
// pair (left, right), or 0 if no pair entry exists. Each format-0 subtable
// stores its pairs sorted by (left,right), and parseKern re-sorts them when
// it merges several subtables, so binary search applies directly.
func (t *kernTable) lookup(left, right Index) int16 {
	if t == nil {
		return 0
	}
	lo, hi := 0, len(t.pairs)
	for lo < hi {
		mid := (lo + hi) / 2
		p := t.pairs[mid]
		switch {
		case left < p.left || (left == p.left && right < p.right):
			hi = mid
		case left > p.left || (left == p.left && right > p.right):
			lo = mid + 1
		default:
			return p.value
		}
	}
	return 0
}
