// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// name table platform IDs relevant to this decoder; platform 2 (ISO) is
// obsolete and has no decoder of its own. Records from it, or from any
// other platform, are not skipped: parseName uses one when no Windows
// record for the same name ID follows it, and decodeNameString returns
// its bytes undecoded.
const (
	platformMacintosh = 1
	platformWindows   = 3
)

const (
	encodingMacRoman    = 0 // platform 1
	encodingWindowsBMP  = 1 // platform 3, UTF-16BE
)

// Name IDs this decoder extracts; the rest of the name table (copyright,
// trademark, manufacturer, ...) is outside this library's scope, which only
// needs enough to label a face for a caller, not a full font-info browser.
const (
	nameFamily     = 1
	nameSubfamily  = 2
	nameFullName   = 4
)

type nameRecord struct {
	platformID, encodingID, languageID, nameID uint16
	offset, length                             int
}

// decodeNameString converts a raw name-table string value to UTF-8,
// following the platform/encoding pair stored alongside it. Unrecognized
// platform/encoding combinations are left undecoded (returned as-is cast to
// string) rather than rejected outright -- a mislabeled or rare platform ID
// in the name table should not fail face construction.
func decodeNameString(platformID, encodingID uint16, raw []byte) string {
	switch {
	case platformID == platformWindows && encodingID == encodingWindowsBMP:
		s, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return ""
		}
		return string(s)
	case platformID == platformMacintosh && encodingID == encodingMacRoman:
		s, err := charmap.Macintosh.NewDecoder().Bytes(raw)
		if err != nil {
			return ""
		}
		return string(s)
	default:
		return string(raw)
	}
}

// parseName decodes the subset of the name table this library cares about:
// family, subfamily and full name, preferring a Windows-Unicode record over
// a Macintosh one when both are present for the same name ID. A short or
// malformed name table degrades to empty strings rather than failing face
// construction, matching every other optional table's degrade-silently
// rule (§7).
func parseName(r *reader) (family, subfamily, full string) {
	if _, err := r.u16(); err != nil { // format
		return "", "", ""
	}
	count, err := r.u16()
	if err != nil {
		return "", "", ""
	}
	stringOffset, err := r.u16()
	if err != nil {
		return "", "", ""
	}
	records := make([]nameRecord, 0, count)
	for i := 0; i < int(count); i++ {
		platformID, err := r.u16()
		if err != nil {
			break
		}
		encodingID, err := r.u16()
		if err != nil {
			break
		}
		languageID, err := r.u16()
		if err != nil {
			break
		}
		nameID, err := r.u16()
		if err != nil {
			break
		}
		length, err := r.u16()
		if err != nil {
			break
		}
		offset, err := r.u16()
		if err != nil {
			break
		}
		records = append(records, nameRecord{
			platformID: platformID, encodingID: encodingID, languageID: languageID,
			nameID: nameID, offset: int(stringOffset) + int(offset), length: int(length),
		})
	}

	best := map[uint16]nameRecord{}
	for _, rec := range records {
		cur, ok := best[rec.nameID]
		if !ok || (rec.platformID == platformWindows && cur.platformID != platformWindows) {
			best[rec.nameID] = rec
		}
	}
	resolve := func(id uint16) string {
		rec, ok := best[id]
		if !ok {
			return ""
		}
		raw, err := r.bytesAt(rec.offset, rec.length)
		if err != nil {
			return ""
		}
		return decodeNameString(rec.platformID, rec.encodingID, raw)
	}
	return resolve(nameFamily), resolve(nameSubfamily), resolve(nameFullName)
}
