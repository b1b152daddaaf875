// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2,
// both of which can be found in the LICENSE file.

// Command gamma rasterizes a single rounded-corner shape at a range of
// gamma correction values and writes the result to out.png, to illustrate
// how the choice of gamma affects a thin antialiased edge.
package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/raster"
)

func p(x, y int) (fixed.Int24Dot8, fixed.Int24Dot8) {
	return fixed.Int24Dot8(x << 8), fixed.Int24Dot8(y << 8)
}

// gammaSurface wraps a raster.Surface, remapping every coverage value
// through v**(1/gamma) before delegating, the same correction the
// teacher's GammaCorrectionPainter applied.
type gammaSurface struct {
	raster.Surface
	gamma float64
}

func (g gammaSurface) SetCoverage(x, y int, coverage uint8) {
	v := float64(coverage) / 255
	v = math.Pow(v, 1/g.gamma)
	g.Surface.SetCoverage(x, y, uint8(v*255+0.5))
}

// alphaSurface adapts an *image.Alpha to raster.Surface.
type alphaSurface struct{ img *image.Alpha }

func (s alphaSurface) Width() int  { return s.img.Bounds().Dx() }
func (s alphaSurface) Height() int { return s.img.Bounds().Dy() }
func (s alphaSurface) SetCoverage(x, y int, coverage uint8) {
	b := s.img.Bounds()
	s.img.SetAlpha(b.Min.X+x, b.Min.Y+y, color.Alpha{A: coverage})
}

func main() {
	// Draw a rounded corner that is one pixel wide.
	r := raster.NewRasterizer(50, 50)
	x, y := p(5, 5)
	lineTo := func(px, py int) { x, y := p(px, py); r.LineTo(x, y) }
	quadTo := func(cx, cy, ex, ey int) {
		cx1, cy1 := p(cx, cy)
		ex1, ey1 := p(ex, ey)
		r.QuadraticCurveTo(cx1, cy1, ex1, ey1)
	}
	r.MoveTo(x, y)
	lineTo(5, 25)
	quadTo(5, 45, 25, 45)
	lineTo(45, 45)
	lineTo(45, 44)
	lineTo(26, 44)
	quadTo(6, 44, 6, 24)
	lineTo(6, 5)
	lineTo(5, 5)

	const w, h = 600, 200
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, image.Rect(0, 0, w, h/2), image.Black, image.Point{}, draw.Src)
	draw.Draw(rgba, image.Rect(0, h/2, w, h), image.White, image.Point{}, draw.Src)

	mask := image.NewAlpha(image.Rect(0, 0, 50, 50))
	gammas := []float64{1.0 / 10.0, 1.0 / 3.0, 1.0 / 2.0, 2.0 / 3.0, 4.0 / 5.0, 1.0, 5.0 / 4.0, 3.0 / 2.0, 2.0, 3.0, 10.0}
	for i, g := range gammas {
		for px := range mask.Pix {
			mask.Pix[px] = 0
		}
		r.Rasterize(gammaSurface{alphaSurface{mask}, g}, 0, 0)
		x, y := 50*i+25, 25
		draw.DrawMask(rgba, image.Rect(x, y, x+50, y+50), image.White, image.Point{}, mask, image.Point{}, draw.Over)
		y += 100
		draw.DrawMask(rgba, image.Rect(x, y, x+50, y+50), image.Black, image.Point{}, mask, image.Point{}, draw.Over)
	}

	f, err := os.Create("out.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	b := bufio.NewWriter(f)
	if err := png.Encode(b, rgba); err != nil {
		log.Fatal(err)
	}
	if err := b.Flush(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote out.png OK.")
}
