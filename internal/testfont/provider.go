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

package testfont

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphtex/contour"
)

// Map is an in-memory outline provider.
// Runes which are not in the map are reported as missing.
type Map map[rune]*contour.Outline

// Outline implements the [contour.Provider] interface.
func (m Map) Outline(r rune) (*contour.Outline, error) {
	o, ok := m[r]
	if !ok {
		return nil, &contour.GlyphNotFoundError{Rune: r}
	}
	return o, nil
}

// Box returns a single-contour outline consisting of the four corners of
// the given rectangle.
func Box(llx, lly, urx, ury float64) *contour.Outline {
	on := contour.TagOnCurve
	return &contour.Outline{
		Points: []vec.Vec2{
			{X: llx, Y: lly}, {X: urx, Y: lly}, {X: urx, Y: ury}, {X: llx, Y: ury},
		},
		Tags:     []contour.Tag{on, on, on, on},
		Contours: []int{3},
	}
}

// Ring returns a two-contour outline: a diamond of quadratic curves inside
// a square.  Outer points lie at distance r from (cx, cy).
func Ring(cx, cy, r float64) *contour.Outline {
	on := contour.TagOnCurve
	var off contour.Tag
	s := r / 2
	return &contour.Outline{
		Points: []vec.Vec2{
			// outer square
			{X: cx - r, Y: cy - r}, {X: cx + r, Y: cy - r},
			{X: cx + r, Y: cy + r}, {X: cx - r, Y: cy + r},
			// inner diamond, with off-curve corners
			{X: cx, Y: cy - s}, {X: cx + s, Y: cy - s},
			{X: cx + s, Y: cy}, {X: cx + s, Y: cy + s},
			{X: cx, Y: cy + s}, {X: cx - s, Y: cy + s},
			{X: cx - s, Y: cy}, {X: cx - s, Y: cy - s},
		},
		Tags: []contour.Tag{
			on, on, on, on,
			on, off, on, off, on, off, on, off,
		},
		Contours: []int{3, 11},
	}
}
