// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command raster rasterizes two hand-coded contours from the `A' glyph of
// the Droid Serif Regular font directly against package raster, without
// going through an sfnt-decoded font, and writes the result to out.png.
package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/vectorfont/ttf/fixed"
	"github.com/vectorfont/ttf/raster"
)

type node struct {
	x, y, degree int
}

// These contours "outside" and "inside" are from the `A' glyph from the Droid
// Serif Regular font.

var outside = []node{
	{414, 489, 1},
	{336, 274, 2},
	{327, 250, 0},
	{322, 226, 2},
	{317, 203, 0},
	{317, 186, 2},
	{317, 134, 0},
	{350, 110, 2},
	{384, 86, 0},
	{453, 86, 1},
	{500, 86, 1},
	{500, 0, 1},
	{0, 0, 1},
	{0, 86, 1},
	{39, 86, 2},
	{69, 86, 0},
	{90, 92, 2},
	{111, 99, 0},
	{128, 117, 2},
	{145, 135, 0},
	{160, 166, 2},
	{176, 197, 0},
	{195, 246, 1},
	{649, 1462, 1},
	{809, 1462, 1},
	{1272, 195, 2},
	{1284, 163, 0},
	{1296, 142, 2},
	{1309, 121, 0},
	{1326, 108, 2},
	{1343, 96, 0},
	{1365, 91, 2},
	{1387, 86, 0},
	{1417, 86, 1},
	{1444, 86, 1},
	{1444, 0, 1},
	{881, 0, 1},
	{881, 86, 1},
	{928, 86, 2},
	{1051, 86, 0},
	{1051, 184, 2},
	{1051, 201, 0},
	{1046, 219, 2},
	{1042, 237, 0},
	{1034, 260, 1},
	{952, 489, 1},
	{414, 489, -1},
}

var inside = []node{
	{686, 1274, 1},
	{453, 592, 1},
	{915, 592, 1},
	{686, 1274, -1},
}

func p(n node) (fixed.Int24Dot8, fixed.Int24Dot8) {
	x, y := 20+n.x/4, 380-n.y/4
	return fixed.Int24Dot8(x << 8), fixed.Int24Dot8(y << 8)
}

// contour walks the fixed node/degree encoding from the original Droid
// Serif data: degree 1 is a line to the next node, degree 2 is a quadratic
// curve through the next two nodes (control, then end), and -1 marks the
// contour's last node.
func contour(r *raster.Rasterizer, ns []node) {
	if len(ns) == 0 {
		return
	}
	i := 0
	x, y := p(ns[i])
	r.MoveTo(x, y)
	for {
		switch ns[i].degree {
		case -1:
			return
		case 1:
			i++
			x, y := p(ns[i])
			r.LineTo(x, y)
		case 2:
			cx, cy := p(ns[i+1])
			ex, ey := p(ns[i+2])
			r.QuadraticCurveTo(cx, cy, ex, ey)
			i += 2
		default:
			panic("bad degree")
		}
	}
}

func showNodes(m *image.RGBA, ns []node) {
	for _, n := range ns {
		x, y := p(n)
		px, py := x.Floor(), y.Floor()
		if px < 0 || px >= m.Bounds().Dx() || py < 0 || py >= m.Bounds().Dy() {
			continue
		}
		switch n.degree {
		case 0:
			m.Set(px, py, color.RGBA{G: 255, B: 255, A: 255})
		case 1, 2:
			m.Set(px, py, color.RGBA{R: 255, A: 255})
		}
	}
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
	const w, h = 400, 400
	r := raster.NewRasterizer(w, h)
	contour(r, outside)
	contour(r, inside)
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Rasterize(alphaSurface{mask}, 0, 0)

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	gray := image.NewUniform(color.Alpha{0x1f})
	draw.Draw(rgba, rgba.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.DrawMask(rgba, rgba.Bounds(), gray, image.Point{}, mask, image.Point{}, draw.Over)
	showNodes(rgba, outside)
	showNodes(rgba, inside)

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
