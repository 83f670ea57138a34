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

// Package fontsource reads glyph outlines from font files.
//
// Two outline providers are available.  [SFNT] returns outlines in font
// design units, taken directly from the "glyf" table where possible.
// [Scaled] returns outlines scaled to a given size, in 26.6 fixed point
// units, as loaded by FreeType.
package fontsource

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphtex/contour"
)

// SFNT provides glyph outlines from a TrueType or OpenType font, in font
// design units.
type SFNT struct {
	Font   *sfnt.Font
	lookup func(rune) glyph.ID
}

// OpenSFNT reads a font file.
func OpenSFNT(fname string) (*SFNT, error) {
	font, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return NewSFNT(font)
}

// NewSFNT returns an outline provider for the given font.
// The font must have a usable "cmap" table.
func NewSFNT(font *sfnt.Font) (*SFNT, error) {
	cmap, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("fontsource: no usable cmap: %w", err)
	}
	return &SFNT{
		Font:   font,
		lookup: cmap.Lookup,
	}, nil
}

// UnitsPerEm returns the size of the em square in design units.
func (s *SFNT) UnitsPerEm() uint16 {
	return s.Font.UnitsPerEm
}

// Outline implements the [contour.Provider] interface.
//
// Simple TrueType glyphs are returned with their original points, so that
// implied on-curve points stay implicit.  Composite glyphs and CFF
// outlines are converted from their path representation.
func (s *SFNT) Outline(r rune) (*contour.Outline, error) {
	gid := s.lookup(r)
	if gid == 0 {
		return nil, &contour.GlyphNotFoundError{Rune: r}
	}

	if outlines, ok := s.Font.Outlines.(*glyf.Outlines); ok {
		if int(gid) >= len(outlines.Glyphs) {
			return nil, &contour.GlyphNotFoundError{Rune: r}
		}
		g := outlines.Glyphs[gid]
		if g == nil {
			return &contour.Outline{}, nil
		}
		if simple, ok := g.Data.(glyf.SimpleGlyph); ok {
			return fromSimpleGlyph(simple)
		}
	}

	return fromPath(s.Font.Outlines.Path(gid)), nil
}

func fromSimpleGlyph(g glyf.SimpleGlyph) (*contour.Outline, error) {
	info, err := g.Unpack()
	if err != nil {
		return nil, err
	}

	o := &contour.Outline{}
	for _, cc := range info.Contours {
		if len(cc) == 0 {
			continue
		}
		for _, p := range cc {
			o.Points = append(o.Points, vec.Vec2{X: float64(p.X), Y: float64(p.Y)})
			var tag contour.Tag
			if p.OnCurve {
				tag = contour.TagOnCurve
			}
			o.Tags = append(o.Tags, tag)
		}
		o.Contours = append(o.Contours, len(o.Points)-1)
	}
	return o, nil
}

// fromPath converts a glyph path into an outline.  Cubic control points
// are tagged with [contour.TagCubic].
func fromPath(p path.Path) *contour.Outline {
	o := &contour.Outline{}
	if p == nil {
		return o
	}

	start := 0
	closeContour := func() {
		n := len(o.Points) - start
		if n >= 2 && o.Tags[len(o.Tags)-1].OnCurve() && o.Points[len(o.Points)-1] == o.Points[start] {
			o.Points = o.Points[:len(o.Points)-1]
			o.Tags = o.Tags[:len(o.Tags)-1]
			n--
		}
		if n < 2 {
			o.Points = o.Points[:start]
			o.Tags = o.Tags[:start]
		} else {
			o.Contours = append(o.Contours, len(o.Points)-1)
		}
		start = len(o.Points)
	}
	add := func(pt vec.Vec2, tag contour.Tag) {
		o.Points = append(o.Points, pt)
		o.Tags = append(o.Tags, tag)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			closeContour()
			add(pts[0], contour.TagOnCurve)
		case path.CmdLineTo:
			add(pts[0], contour.TagOnCurve)
		case path.CmdQuadTo:
			add(pts[0], 0)
			add(pts[1], contour.TagOnCurve)
		case path.CmdCubeTo:
			add(pts[0], contour.TagCubic)
			add(pts[1], contour.TagCubic)
			add(pts[2], contour.TagOnCurve)
		case path.CmdClose:
			closeContour()
		}
	}
	closeContour()

	return o
}
