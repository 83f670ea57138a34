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

// Package texture packs glyph outlines into a compact binary blob.
//
// The blob is a sequence of little-endian 16-bit units.  It starts with the
// number n of glyphs, followed by n (code, offset) index pairs sorted by
// character code, followed by one record per glyph:
//
//	sign dx, |dx|, sign dy, |dy|,
//	n_points, x_1, ..., x_n,
//	n_points, y_1, ..., y_n,
//	n_tags, tag_1, ..., tag_n,
//	n_contours, end_1, ..., end_k
//
// Offsets are measured in units from the start of the blob.  Coordinates
// are stored relative to the lower left corner of the glyph's bounding box,
// whose position is given by (dx, dy) in sign-and-magnitude form.  The blob
// is zero-padded to a multiple of four bytes, so that it can be uploaded as
// an RGBA8 texture.
package texture

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"seehuhn.de/go/glyphtex/charset"
	"seehuhn.de/go/glyphtex/contour"
)

// IndexEntry is one entry of the texture index.
type IndexEntry struct {
	Code   byte
	Offset uint16 // record position, in units
}

// Texture is an encoded set of glyph outlines.
type Texture struct {
	Index   []IndexEntry
	Records []*GlyphRecord
	Data    []byte
}

// Options control the encoding.
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// SkipMissing causes characters without a glyph in the font to be
	// omitted (with a warning) instead of failing the encoding.
	SkipMissing bool

	// PadSquare pads the data to Size()*Size() texels of four bytes each.
	PadSquare bool
}

// Encode packs the outlines of the given characters.
//
// The character set is sorted and de-duplicated first, so the output does
// not depend on the order of chars.
func Encode(chars charset.Set, p contour.Provider, opt *Options) (*Texture, error) {
	if opt == nil {
		opt = &Options{}
	}
	chars = chars.Normalize()
	if len(chars) == 0 {
		return nil, ErrEmptyInput
	}

	records, err := buildRecords(chars, p, opt.SkipMissing)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	index, err := layout(records)
	if err != nil {
		return nil, err
	}

	data := emit(index, records)
	if opt.PadSquare {
		data = PadSquare(data)
	} else {
		data = Pad(data)
	}

	t := &Texture{
		Index:   index,
		Records: records,
		Data:    data,
	}
	Logger().Info("encoded texture",
		"glyphs", len(records),
		"bytes", len(data),
		"size", t.Size())
	return t, nil
}

// buildRecords looks up and packs the outline for every character.
func buildRecords(chars charset.Set, p contour.Provider, skipMissing bool) ([]*GlyphRecord, error) {
	records := make([]*GlyphRecord, 0, len(chars))
	for _, c := range chars {
		o, err := p.Outline(c.Rune)
		if err != nil {
			var notFound *contour.GlyphNotFoundError
			if skipMissing && errors.As(err, &notFound) {
				Logger().Warn("glyph not found, skipping",
					"char", string(c.Rune), "code", c.Code)
				continue
			}
			return nil, &GlyphLookupError{Code: c.Code, Rune: c.Rune, Err: err}
		}

		g, err := newRecord(c.Code, o)
		if err != nil {
			return nil, err
		}
		records = append(records, g)
	}
	return records, nil
}

// indexLen returns the number of units used by the header and index of a
// texture with n glyphs.
func indexLen(n int) int {
	return 1 + 2*n
}

// layout computes the record offsets.  Record i starts after the index and
// all records before it.
func layout(records []*GlyphRecord) ([]IndexEntry, error) {
	if len(records) > maxUnit {
		return nil, &CoordinateRangeError{Field: "glyph count", Value: float64(len(records))}
	}

	starts := make([]int, len(records))
	pos := indexLen(len(records))
	for i, g := range records {
		starts[i] = pos
		pos += g.Len()
	}

	index := make([]IndexEntry, len(records))
	for i, g := range records {
		if starts[i] > maxUnit {
			return nil, &CoordinateRangeError{Code: g.Code, Field: "offset", Value: float64(starts[i])}
		}
		index[i] = IndexEntry{Code: g.Code, Offset: uint16(starts[i])}
		Logger().Debug("glyph record",
			"code", g.Code,
			"offset", starts[i],
			"points", g.PointCount(),
			"contours", g.ContourCount())
	}
	return index, nil
}

// emit writes the header, the index and all records.
func emit(index []IndexEntry, records []*GlyphRecord) []byte {
	n := indexLen(len(index))
	for _, g := range records {
		n += g.Len()
	}
	buf := make([]byte, 0, 2*n+2)

	buf = appendUnit(buf, uint16(len(index)))
	for _, e := range index {
		buf = appendUnit(buf, uint16(e.Code))
		buf = appendUnit(buf, e.Offset)
	}
	for _, g := range records {
		buf = g.appendTo(buf)
	}
	return buf
}

// Pad appends zero bytes to data until the length is a multiple of four.
func Pad(data []byte) []byte {
	for len(data)%4 != 0 {
		data = append(data, 0)
	}
	return data
}

// PadSquare appends zero bytes to data until the length is s*s*4, where s is
// [SquareSize] of the length of data.
func PadSquare(data []byte) []byte {
	s := SquareSize(len(data))
	return append(data, make([]byte, s*s*4-len(data))...)
}

// SquareSize returns the side length of the smallest square of four-byte
// texels which can hold n bytes, i.e. ceil(sqrt(ceil(n/4))).
func SquareSize(n int) int {
	texels := (n + 3) / 4
	s := int(math.Sqrt(float64(texels)))
	for s*s < texels {
		s++
	}
	for s > 0 && (s-1)*(s-1) >= texels {
		s--
	}
	return s
}

// NumGlyphs returns the number of glyphs in the texture.
func (t *Texture) NumGlyphs() int {
	return len(t.Index)
}

// Units returns the texture data as 16-bit units.
func (t *Texture) Units() []uint16 {
	res := make([]uint16, len(t.Data)/2)
	for i := range res {
		res[i] = uint16(t.Data[2*i]) | uint16(t.Data[2*i+1])<<8
	}
	return res
}

// Size returns the side length of the square texture which holds the data.
func (t *Texture) Size() int {
	return SquareSize(len(t.Data))
}

// Lookup returns the record for the given character code.
func (t *Texture) Lookup(code byte) (*GlyphRecord, bool) {
	i, found := slices.BinarySearchFunc(t.Index, code, func(e IndexEntry, code byte) int {
		return cmp.Compare(e.Code, code)
	})
	if !found || i >= len(t.Records) {
		return nil, false
	}
	return t.Records[i], true
}
