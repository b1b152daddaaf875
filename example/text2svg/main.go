// The text2svg command converts a text string to a filled SVG path
// in a given TrueType font, using the font's raw (unhinted) outlines.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vectorfont/ttf/sfnt"
)

// flags
var (
	textFlag = flag.String("text", "Hamburger", "the text to print")
	fontFlag = flag.String("font", "/Library/Fonts/Georgia Italic.ttf",
		"file name of the TrueType font to use")
	scaleFlag = flag.Int("scale", 100, "scale in points")
)

func main() {
	flag.Parse()

	log.SetPrefix("text2svg: ")
	log.SetFlags(0)

	data, err := os.ReadFile(*fontFlag)
	if err != nil {
		log.Fatalf("loading font: %v", err)
	}

	col, err := sfnt.Parse(data)
	if err != nil {
		log.Fatalf("parsing font: %v", err)
	}
	f, err := col.ReadFace(0)
	if err != nil {
		log.Fatalf("reading face: %v", err)
	}

	fmt.Printf("<svg xmlns='http://www.w3.org/2000/svg' "+
		"style='fill: grey' width='%d' height='%d'>\n",
		1000, 1000)

	// scale converts a FUnit quantity to 26.6 fixed-point at *scaleFlag
	// points; upem is the font's em square in FUnits.
	upem := int64(f.UnitsPerEm())
	scale := int64(*scaleFlag) << 6
	toFixed := func(funits int32) int64 { return (int64(funits)*scale + upem/2) / upem }

	dy := scale // set the baseline one line below the origin
	var dx int64
	var prevIndex sfnt.Index
	for i, r := range *textFlag {
		index := f.Index(r)

		outline, err := f.Glyph(index)
		if err != nil {
			log.Fatalf("loading glyph: %v", err)
		}

		fmt.Printf("<path d='")
		prevEnd := 0
		for _, end := range outline.ContourEnds {
			drawContour(outline.Points[prevEnd:end+1], toFixed, dx, dy, drawSVG)
			prevEnd = end + 1
		}
		fmt.Printf("'/>\n")

		hm := f.HorizontalMetrics(index)
		dx += toFixed(int32(hm.AdvanceWidth))
		if i > 0 {
			dx += toFixed(int32(f.Kerning(prevIndex, index)))
		}
		prevIndex = index
	}
	fmt.Println("</svg>")
}

func drawSVG(cmd rune, x0, y0, x1, y1 int64) {
	switch cmd {
	case 'M': // moveto
		fmt.Printf("M%s ", p2svg(x0, y0))
	case 'L': // lineto
		fmt.Printf("L%s ", p2svg(x0, y0))
	case 'Q': // quadratic spline
		fmt.Printf("Q%s %s ", p2svg(x0, y0), p2svg(x1, y1))
	}
}

func p2svg(x, y int64) string {
	return fmt.Sprintf("%v,%v", float64(x)/64, float64(y)/64)
}

// drawContour calls draw for each moveto, lineto, or quadratic spline
// command implied by one contour's on/off-curve points, applying toFixed,
// dx and a Y-flip (dy-y: SVG, like the rasterizer surfaces elsewhere in
// this module, has y increasing downward while FUnits have y increasing
// upward) to every coordinate.
//
// Adapted from the decomposition walk shared by this module's root
// package and freetype-go's own freetype.go drawContour.
func drawContour(ps []sfnt.Point, toFixed func(int32) int64, dx, dy int64, draw func(cmd rune, x0, y0, x1, y1 int64)) {
	if len(ps) == 0 {
		return
	}
	pt := func(p sfnt.Point) (int64, int64) {
		return dx + toFixed(p.X), dy - toFixed(p.Y)
	}
	onCurve := func(p sfnt.Point) bool { return p.Kind == sfnt.OnCurve }

	n := len(ps)
	startIdx := 0
	var startX, startY int64
	switch {
	case onCurve(ps[0]):
		startX, startY = pt(ps[0])
	case onCurve(ps[n-1]):
		startX, startY = pt(ps[n-1])
		startIdx = n - 1
	default:
		fx, fy := pt(ps[0])
		lx, ly := pt(ps[n-1])
		startX, startY = (fx+lx)/2, (fy+ly)/2
	}
	draw('M', startX, startY, 0, 0)

	// Walking all n points plus the wraparound back to (startIdx, startX,
	// startY) both visits every point once and closes the contour: the
	// final iteration's end coordinates always land back on the start,
	// whether that start was an actual on-curve point or a synthesized
	// midpoint between two off-curve runs.
	qx, qy, on0 := startX, startY, true
	if startIdx == 0 && !onCurve(ps[0]) {
		// ps[0] is the first curve's control point; the last step revisits
		// it and ends that curve on the synthesized start midpoint.
		qx, qy = pt(ps[0])
		on0 = false
	}
	for step := 1; step <= n; step++ {
		x, y := pt(ps[(startIdx+step)%n])
		on := onCurve(ps[(startIdx+step)%n])
		switch {
		case on && on0:
			draw('L', x, y, 0, 0)
		case on && !on0:
			draw('Q', qx, qy, x, y)
		case !on && !on0:
			midX, midY := (qx+x)/2, (qy+y)/2
			draw('Q', qx, qy, midX, midY)
		}
		// !on && on0: hold the control point for the next iteration.
		qx, qy, on0 = x, y, on
	}
}
