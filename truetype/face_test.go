// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"golang.org/x/exp/shiny/font"
)

func TestOptionsDefaults(t *testing.T) {
	var o *Options
	if got, want := o.size(), 12.0; got != want {
		t.Errorf("nil Options size() = %v, want %v", got, want)
	}
	if got, want := o.dpi(), 72.0; got != want {
		t.Errorf("nil Options dpi() = %v, want %v", got, want)
	}
	if got, want := o.hinting(), font.HintingNone; got != want {
		t.Errorf("nil Options hinting() = %v, want %v", got, want)
	}
}

func TestOptionsOverrides(t *testing.T) {
	o := &Options{Size: 24, DPI: 144, Hinting: font.HintingFull}
	if got, want := o.size(), 24.0; got != want {
		t.Errorf("size() = %v, want %v", got, want)
	}
	if got, want := o.dpi(), 144.0; got != want {
		t.Errorf("dpi() = %v, want %v", got, want)
	}
	if got, want := o.hinting(), font.HintingFull; got != want {
		t.Errorf("hinting() = %v, want %v", got, want)
	}
}

// compile-time assertion that *face satisfies font.Face.
var _ font.Face = (*face)(nil)
