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

// Package contour represents glyph outlines as tagged point sequences and
// decomposes them into line and Bézier segments.
//
// An [Outline] stores the points of all contours of a glyph in a single
// slice, together with one [Tag] per point and the (inclusive) index of the
// last point of every contour.  This is the form in which TrueType "glyf"
// data and FreeType outlines describe glyphs.
package contour

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Tag holds the per-point flags of an outline.
type Tag uint8

// These are the flag bits used in a [Tag].
const (
	// TagOnCurve marks points which lie on the outline.  Points without
	// this bit are Bézier control points.
	TagOnCurve Tag = 1 << 0

	// TagCubic marks off-curve points which are control points of a cubic
	// Bézier curve.  Off-curve points without this bit are quadratic.
	TagCubic Tag = 1 << 1
)

// OnCurve reports whether the point lies on the outline.
func (t Tag) OnCurve() bool {
	return t&TagOnCurve != 0
}

// Cubic reports whether the point is a cubic control point.
func (t Tag) Cubic() bool {
	return t&(TagOnCurve|TagCubic) == TagCubic
}

// Outline is the vector outline of a single glyph.
//
// Contour i consists of the points Contours[i-1]+1, ..., Contours[i],
// where the first contour starts at index 0.
type Outline struct {
	Points   []vec.Vec2
	Tags     []Tag
	Contours []int
}

// IsEmpty reports whether the outline has no points.
// Empty outlines are valid, for example for the space character.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Points) == 0
}

// NumContours returns the number of contours in the outline.
func (o *Outline) NumContours() int {
	if o == nil {
		return 0
	}
	return len(o.Contours)
}

// Contour returns the points and tags of contour i.
// The returned slices share memory with the outline.
func (o *Outline) Contour(i int) ([]vec.Vec2, []Tag) {
	start := 0
	if i > 0 {
		start = o.Contours[i-1] + 1
	}
	end := o.Contours[i] + 1
	return o.Points[start:end], o.Tags[start:end]
}

// Validate checks the structural invariants of the outline.
// If the outline is malformed, a [*MalformedContourError] is returned.
func (o *Outline) Validate() error {
	if o == nil {
		return nil
	}
	if len(o.Tags) != len(o.Points) {
		return &MalformedContourError{
			Contour: -1,
			Reason:  "number of tags does not match number of points",
		}
	}
	prev := -1
	for i, end := range o.Contours {
		if end <= prev {
			return &MalformedContourError{
				Contour: i,
				End:     end,
				Reason:  "contour end points are not strictly increasing",
			}
		}
		if end >= len(o.Points) {
			return &MalformedContourError{
				Contour: i,
				End:     end,
				Reason:  "contour end point out of range",
			}
		}
		prev = end
	}
	if prev != len(o.Points)-1 {
		return &MalformedContourError{
			Contour: len(o.Contours) - 1,
			End:     prev,
			Reason:  "points after the last contour",
		}
	}
	return nil
}

// Bounds returns the bounding box of all points, including control points.
// The zero rectangle is returned for empty outlines.
func (o *Outline) Bounds() rect.Rect {
	if o.IsEmpty() {
		return rect.Rect{}
	}
	p := o.Points[0]
	bbox := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, p := range o.Points[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

// Provider gives access to the outlines of a font.
//
// If the font has no glyph for r, Outline must return a
// [*GlyphNotFoundError].
type Provider interface {
	Outline(r rune) (*Outline, error)
}
