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

package texture

import (
	"encoding/binary"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphtex/contour"
)

const (
	maxUnit = math.MaxUint16

	// recordHeaderLen is the number of fixed-size units in a glyph record:
	// two signed magnitudes and four length fields.
	recordHeaderLen = 8

	tagMask = contour.TagOnCurve | contour.TagCubic
)

// GlyphRecord is the packed form of one glyph outline.
//
// All coordinates are stored relative to Origin, the lower left corner of
// the bounding box of the (floored) outline points, so that they fit into
// unsigned 16-bit units.
type GlyphRecord struct {
	Code     byte
	Origin   [2]SignedMagnitude
	X, Y     []uint16
	Tags     []uint16
	Contours []uint16
}

// PointCount returns the number of outline points in the record.
func (g *GlyphRecord) PointCount() int {
	return len(g.X)
}

// ContourCount returns the number of contours in the record.
func (g *GlyphRecord) ContourCount() int {
	return len(g.Contours)
}

// Len returns the length of the packed record in units.
func (g *GlyphRecord) Len() int {
	return recordHeaderLen + len(g.X) + len(g.Y) + len(g.Tags) + len(g.Contours)
}

// BoundsOffset returns the translation which was applied to the outline
// coordinates before packing.
func (g *GlyphRecord) BoundsOffset() (dx, dy int) {
	return -g.Origin[0].Int(), -g.Origin[1].Int()
}

// Outline reconstructs the glyph outline from the record.
func (g *GlyphRecord) Outline() *contour.Outline {
	ox, oy := g.Origin[0].Int(), g.Origin[1].Int()
	o := &contour.Outline{
		Points:   make([]vec.Vec2, len(g.X)),
		Tags:     make([]contour.Tag, len(g.Tags)),
		Contours: make([]int, len(g.Contours)),
	}
	for i := range g.X {
		o.Points[i] = vec.Vec2{
			X: float64(int(g.X[i]) + ox),
			Y: float64(int(g.Y[i]) + oy),
		}
	}
	for i, tag := range g.Tags {
		o.Tags[i] = contour.Tag(tag)
	}
	for i, end := range g.Contours {
		o.Contours[i] = int(end)
	}
	return o
}

// appendTo appends the packed record to buf.
func (g *GlyphRecord) appendTo(buf []byte) []byte {
	put := func(v uint16) {
		buf = appendUnit(buf, v)
	}
	putAll := func(vv []uint16) {
		put(uint16(len(vv)))
		for _, v := range vv {
			put(v)
		}
	}

	for _, sm := range g.Origin {
		u := sm.Units()
		put(u[0])
		put(u[1])
	}
	putAll(g.X)
	putAll(g.Y)
	putAll(g.Tags)
	putAll(g.Contours)
	return buf
}

// newRecord packs the outline o for the character code.
func newRecord(code byte, o *contour.Outline) (*GlyphRecord, error) {
	err := o.Validate()
	if err != nil {
		return nil, err
	}
	if o == nil {
		o = &contour.Outline{}
	}

	n := len(o.Points)
	if n > maxUnit {
		return nil, &CoordinateRangeError{Code: code, Field: "point count", Value: float64(n)}
	}
	if len(o.Contours) > maxUnit {
		return nil, &CoordinateRangeError{Code: code, Field: "contour count", Value: float64(len(o.Contours))}
	}

	xx := make([]int, n)
	yy := make([]int, n)
	for i, p := range o.Points {
		xx[i], err = floor(code, "x", p.X)
		if err != nil {
			return nil, err
		}
		yy[i], err = floor(code, "y", p.Y)
		if err != nil {
			return nil, err
		}
	}

	g := &GlyphRecord{Code: code}
	g.X, g.Origin[0], err = shift(code, "x", xx)
	if err != nil {
		return nil, err
	}
	g.Y, g.Origin[1], err = shift(code, "y", yy)
	if err != nil {
		return nil, err
	}

	g.Tags = make([]uint16, n)
	for i, tag := range o.Tags {
		g.Tags[i] = uint16(tag & tagMask)
	}
	g.Contours = make([]uint16, len(o.Contours))
	for i, end := range o.Contours {
		g.Contours[i] = uint16(end)
	}
	return g, nil
}

// floor converts a coordinate to an integer, always rounding down.
func floor(code byte, field string, x float64) (int, error) {
	f := math.Floor(x)
	if !(f >= -maxUnit && f <= 2*maxUnit) { // also catches NaN
		return 0, &CoordinateRangeError{Code: code, Field: field, Value: x}
	}
	return int(f), nil
}

// shift moves the values in vv so that the smallest value becomes zero.
// The amount of the shift is returned as the origin.
func shift(code byte, field string, vv []int) ([]uint16, SignedMagnitude, error) {
	res := make([]uint16, len(vv))
	if len(vv) == 0 {
		return res, SignedMagnitude{}, nil
	}

	lo := vv[0]
	for _, v := range vv[1:] {
		lo = min(lo, v)
	}
	origin, err := NewSignedMagnitude(lo)
	if err != nil {
		return nil, origin, &CoordinateRangeError{Code: code, Field: field + " origin", Value: float64(lo)}
	}
	for i, v := range vv {
		d := v - lo
		if d > maxUnit {
			return nil, origin, &CoordinateRangeError{Code: code, Field: field, Value: float64(d)}
		}
		res[i] = uint16(d)
	}
	return res, origin, nil
}

func appendUnit(buf []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, v)
}
