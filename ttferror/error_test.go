// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package ttferror

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	for _, k := range []Kind{
		TruncatedInput, OutOfBounds, UnsupportedSfnt, MissingRequiredTable,
		InvalidTable, InvalidBytecode, UnsupportedFeature,
	} {
		if k.String() == "unknown error" {
			t.Errorf("Kind(%d).String() fell through to the default case", k)
		}
	}
	if got := Kind(999).String(); got != "unknown error" {
		t.Errorf("Kind(999).String() = %q, want %q", got, "unknown error")
	}
}

func TestIs(t *testing.T) {
	err := New(InvalidBytecode, "stack underflow: need %d, have %d", 2, 0)
	if !Is(err, InvalidBytecode) {
		t.Error("Is(err, InvalidBytecode) = false, want true")
	}
	if Is(err, TruncatedInput) {
		t.Error("Is(err, TruncatedInput) = true, want false")
	}
	if Is(errors.New("plain error"), InvalidBytecode) {
		t.Error("Is(plain error, InvalidBytecode) = true, want false")
	}
	if want := "ttf: invalid bytecode: stack underflow: need 2, have 0"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
