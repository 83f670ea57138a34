// seehuhn.de/go/glyphtex - pack glyph outlines into shader textures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testfont provides fonts and outline providers for use in unit
// tests.
package testfont

import (
	"bytes"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// GoRegular returns the Go Regular font, which has glyf outlines.
func GoRegular() *sfnt.Font {
	info, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return info
}

// GoRegularCFF returns the Go Regular font, converted to CFF outlines.
// Quadratic curves are converted to cubic ones.
func GoRegularCFF() *sfnt.Font {
	info := GoRegular()

	origOutlines := info.Outlines.(*glyf.Outlines)
	newOutlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueValues: []funit.Int16{},
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
			},
		},
		Encoding: make([]glyph.ID, 256),
		FDSelect: func(glyph.ID) int { return 0 },
	}
	for i, origGlyph := range origOutlines.Glyphs {
		gid := glyph.ID(i)
		newGlyph := cff.NewGlyph(info.GlyphName(gid), info.GlyphWidth(gid))
		if origGlyph != nil {
			for cmd, pts := range origOutlines.Path(gid).ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					newGlyph.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					newGlyph.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					newGlyph.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				}
			}
		}
		newOutlines.Glyphs = append(newOutlines.Glyphs, newGlyph)
	}
	info.Outlines = newOutlines

	return info
}
