// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Command dumpfont loads a TrueType/OpenType font file and logs a summary
// of one face (face count, names, units per em, glyph count), its scaled
// metrics, and glyph 0's render size and horizontal metrics, optionally
// hinted.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/vectorfont/ttf"
	"github.com/vectorfont/ttf/sfnt"
)

var (
	fontfile = flag.String("font", "", "filename of font to dump")
	faceFlag = flag.Int("face", 0, "face index within a TrueType Collection")
	ppem     = flag.Float64("ppem", 12, "pixels per em to report scaled metrics at")
	dpi      = flag.Float64("dpi", 72, "dots per inch, used with -points instead of -ppem")
	points   = flag.Float64("points", 0, "point size; overrides -ppem if non-zero")
	hinting  = flag.Bool("hinting", true, "run the bytecode interpreter before reporting glyph 0")
)

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	data, err := os.ReadFile(*fontfile)
	if err != nil {
		logger.Fatal("reading font file", zap.String("path", *fontfile), zap.Error(err))
	}

	col, err := ttf.Parse(data)
	if err != nil {
		logger.Fatal("parsing sfnt directory", zap.Error(err))
	}
	logger.Info("parsed collection", zap.Int("faceCount", col.FaceCount()))

	face, err := col.Face(*faceFlag)
	if err != nil {
		logger.Fatal("decoding face", zap.Int("faceIndex", *faceFlag), zap.Error(err))
	}

	logger.Info("face summary",
		zap.String("familyName", face.FamilyName()),
		zap.String("subfamilyName", face.SubfamilyName()),
		zap.Int("unitsPerEm", face.UnitsPerEm()),
		zap.Int("glyphCount", face.GlyphCount()),
	)

	pixelsPerEm := *ppem
	if *points > 0 {
		pixelsPerEm = ttf.ComputePixelSize(*points, *dpi)
	}
	m := face.GetFaceMetrics(pixelsPerEm)
	logger.Info("scaled metrics",
		zap.Float64("pixelsPerEm", pixelsPerEm),
		zap.Int32("ascent", int32(m.Ascent)),
		zap.Int32("descent", int32(m.Descent)),
		zap.Int32("lineHeight", int32(m.LineHeight)),
		zap.Bool("isFixedPitch", m.IsFixedPitch),
	)

	g, err := face.GetGlyph(sfnt.Index(0), pixelsPerEm, *hinting)
	if err != nil {
		logger.Warn("decoding glyph 0 failed", zap.Error(err))
		return
	}
	bearing, advance := g.HorizontalMetrics()
	logger.Info("glyph 0 (.notdef)",
		zap.Bool("hinted", *hinting),
		zap.Int("renderWidth", g.RenderWidth()),
		zap.Int("renderHeight", g.RenderHeight()),
		zap.Int32("leftSideBearing", int32(bearing)),
		zap.Int32("advanceWidth", int32(advance)),
	)
}
